package recommendation

import (
	"fmt"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
)

// Templates maps every code to its message text in one locale.
type Templates map[Code]string

const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
)

var english = Templates{
	LowCode(catalog.Energetic): "Your energy level is low. Consider energy-focused meditation, breathing exercises (pranayama) and making sure your sleep is restorative.",
	MidCode(catalog.Energetic): "To optimize your energy field, explore bioenergetic techniques or acupuncture, and take moments of rest during the day.",
	LowCode(catalog.Emotional): "Emotional balance looks like a point of attention. Mindfulness techniques, therapy or emotional coaching can be very beneficial.",
	MidCode(catalog.Emotional): "To strengthen your emotional resilience, practice therapeutic writing or spend time on hobbies that bring you joy and relaxation.",
	LowCode(catalog.Mental):    "Your mental clarity can be improved. Try focus exercises such as puzzles or concentrated reading, and cut down on multitasking.",
	MidCode(catalog.Mental):    "For a sharper mind, consider learning something new, practicing mindfulness meditation or organizing your work and study space.",
	LowCode(catalog.Physical):  "Your body is asking for attention. Start a routine of light physical activity and review your eating habits, choosing more nutritious options.",
	MidCode(catalog.Physical):  "To improve your physical well-being, increase the intensity or frequency of your exercise and explore whole foods and proper hydration.",
	LowCode(catalog.Spiritual): "Your spiritual connection can be deepened. Set aside time for contemplative practices, contact with nature or activities that nourish your soul.",
	MidCode(catalog.Spiritual): "To expand your spiritual dimension, explore philosophies of life, join groups with similar interests or practice gratitude daily.",
	CodeSleep:                  "Sleep quality seems to be a challenge. Build a relaxing bedtime routine, avoid caffeine at night and keep your room dark and quiet.",
	CodeNutrition:              "Your eating habits can be improved. Consider seeing a nutritionist or learning about balanced, nutrient-rich diets.",
	CodeCongratulations:        "Congratulations! Your fields show a good balance. Keep nurturing every dimension and explore advanced harmonization practices if you want to go further.",
	CodeFallback:               "Your fields are in a generally positive state. Keep up your wellness practices and watch the areas that can be subtly improved.",
}

var portuguese = Templates{
	LowCode(catalog.Energetic): "Seu nível energético está baixo. Considere práticas como meditação focada em energia, exercícios de respiração (pranayamas) e garantir um sono reparador.",
	MidCode(catalog.Energetic): "Para otimizar seu campo energético, explore técnicas de bioenergética ou acupuntura, e observe momentos de descanso durante o dia.",
	LowCode(catalog.Emotional): "O equilíbrio emocional parece ser um ponto de atenção. Técnicas de mindfulness, terapia ou coaching emocional podem ser muito benéficas.",
	MidCode(catalog.Emotional): "Para fortalecer sua resiliência emocional, pratique a escrita terapêutica ou dedique tempo a hobbies que lhe tragam alegria e relaxamento.",
	LowCode(catalog.Mental):    "Sua clareza mental pode ser aprimorada. Experimente exercícios de foco, como quebra-cabeças ou leitura concentrada, e reduza multitarefas.",
	MidCode(catalog.Mental):    "Para um estado mental mais aguçado, considere aprender algo novo, praticar a meditação de atenção plena ou organizar seu ambiente de trabalho/estudo.",
	LowCode(catalog.Physical):  "Seu corpo físico pede atenção. Inicie uma rotina de atividades físicas leves e revise seus hábitos alimentares, buscando opções mais nutritivas.",
	MidCode(catalog.Physical):  "Para melhorar seu bem-estar físico, aumente a intensidade ou frequência de seus exercícios e explore alimentos integrais e hidratação adequada.",
	LowCode(catalog.Spiritual): "Sua conexão espiritual pode ser aprofundada. Dedique tempo a práticas contemplativas, contato com a natureza ou atividades que nutram sua alma.",
	MidCode(catalog.Spiritual): "Para expandir sua dimensão espiritual, explore filosofias de vida, participe de grupos com interesses similares ou pratique a gratidão diariamente.",
	CodeSleep:                  "A qualidade do seu sono parece ser um desafio. Crie uma rotina relaxante antes de dormir, evite cafeína à noite e garanta um ambiente escuro e silencioso.",
	CodeNutrition:              "Seus hábitos alimentares podem ser melhorados. Considere consultar um nutricionista ou pesquisar sobre dietas balanceadas e ricas em nutrientes.",
	CodeCongratulations:        "Parabéns! Seus campos quânticos mostram um bom equilíbrio. Continue nutrindo todas as suas dimensões e explore práticas avançadas de harmonização se desejar ir além.",
	CodeFallback:               "Seus campos quânticos estão em um estado geral positivo. Continue com suas práticas de bem-estar e observe as áreas que podem ser sutilmente aprimoradas.",
}

// TemplatesFor returns the message set for a locale. An empty locale means
// English.
func TemplatesFor(locale string) (Templates, error) {
	switch locale {
	case "", LocaleEnglish:
		return english, nil
	case LocalePortuguese:
		return portuguese, nil
	default:
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
}
