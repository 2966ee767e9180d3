package catalog

var (
	optionsGeneric = []Option{
		{Value: 1, Label: "Very low / Strongly disagree"},
		{Value: 2, Label: "Low / Somewhat disagree"},
		{Value: 3, Label: "Moderate / Neutral"},
		{Value: 4, Label: "Good / Somewhat agree"},
		{Value: 5, Label: "Excellent / Strongly agree"},
	}
	optionsFrequency = []Option{
		{Value: 1, Label: "Never / Rarely"},
		{Value: 2, Label: "Sometimes"},
		{Value: 3, Label: "Moderately"},
		{Value: 4, Label: "Often"},
		{Value: 5, Label: "Always / Almost always"},
	}
	optionsQuality = []Option{
		{Value: 1, Label: "Very poor"},
		{Value: 2, Label: "Poor"},
		{Value: 3, Label: "Fair"},
		{Value: 4, Label: "Good"},
		{Value: 5, Label: "Excellent"},
	}
	optionsYesNoFrequency = []Option{
		{Value: 1, Label: "No, rarely"},
		{Value: 2, Label: "No, sometimes"},
		{Value: 3, Label: "Yes, moderately"},
		{Value: 4, Label: "Yes, often"},
		{Value: 5, Label: "Yes, consistently"},
	}
)

// Question ids the recommendation rules look at directly.
const (
	SleepQualityQuestion = "physical_3"
	NutritionQuestion    = "physical_5"
)

var defaultQuestions = []Question{
	{ID: "energetic_1", Category: Energetic, Prompt: "How would you rate your overall energy level throughout the day?", Options: optionsQuality},
	{ID: "energetic_2", Category: Energetic, Prompt: "How often do you feel exhausted for no apparent reason?", Options: optionsFrequency},
	{ID: "energetic_3", Category: Energetic, Prompt: "How would you rate your ability to recover after intense physical or mental activity?", Options: optionsQuality},
	{ID: "energetic_4", Category: Energetic, Prompt: "Do you feel your vital energy flows freely and in balance through your body?", Options: optionsGeneric},
	{ID: "energetic_5", Category: Energetic, Prompt: "How do you rate your vitality compared with earlier periods of your life or with people your age?", Options: optionsQuality},

	{ID: "emotional_1", Category: Emotional, Prompt: "How would you rate your ability to cope with stress and pressure?", Options: optionsQuality},
	{ID: "emotional_2", Category: Emotional, Prompt: "How often do you experience sudden mood swings or feel emotionally overwhelmed?", Options: optionsFrequency},
	{ID: "emotional_3", Category: Emotional, Prompt: "Can you identify, express and process your emotions in a healthy, constructive way?", Options: optionsYesNoFrequency},
	{ID: "emotional_4", Category: Emotional, Prompt: "How would you rate your emotional stability and ability to stay calm when challenged?", Options: optionsQuality},
	{ID: "emotional_5", Category: Emotional, Prompt: "Do you feel genuinely emotionally connected with the important people in your life?", Options: optionsYesNoFrequency},

	{ID: "mental_1", Category: Mental, Prompt: "How would you rate your mental clarity and concentration on everyday or complex tasks?", Options: optionsQuality},
	{ID: "mental_2", Category: Mental, Prompt: "How often do you struggle to make decisions or feel mentally confused?", Options: optionsFrequency},
	{ID: "mental_3", Category: Mental, Prompt: "Can you keep your focus on a task for adequate periods without getting easily distracted?", Options: optionsYesNoFrequency},
	{ID: "mental_4", Category: Mental, Prompt: "How would you rate your short and long term memory and your ability to learn?", Options: optionsQuality},
	{ID: "mental_5", Category: Mental, Prompt: "Do you feel mentally stimulated and engaged by your daily activities and projects?", Options: optionsYesNoFrequency},

	{ID: "physical_1", Category: Physical, Prompt: "How would you rate your overall physical health and bodily well-being?", Options: optionsQuality},
	{ID: "physical_2", Category: Physical, Prompt: "How often do you feel pain, physical discomfort or symptoms of malaise?", Options: optionsFrequency},
	{ID: SleepQualityQuestion, Category: Physical, Prompt: "How is the quality of your sleep (falling asleep, staying asleep, waking rested)?", Options: optionsQuality},
	{ID: "physical_4", Category: Physical, Prompt: "Do you exercise regularly and enjoy it?", Options: optionsYesNoFrequency},
	{ID: NutritionQuestion, Category: Physical, Prompt: "How would you rate your eating habits in terms of nutrition and balance?", Options: optionsQuality},

	{ID: "spiritual_1", Category: Spiritual, Prompt: "Do you feel connected to a greater purpose in your life or to something transcendent?", Options: optionsYesNoFrequency},
	{ID: "spiritual_2", Category: Spiritual, Prompt: "How often do you set time aside for practices that nourish your spirituality (meditation, prayer, time in nature)?", Options: optionsFrequency},
	{ID: "spiritual_3", Category: Spiritual, Prompt: "Do you find meaning, contentment and purpose in your experiences and life journey?", Options: optionsYesNoFrequency},
	{ID: "spiritual_4", Category: Spiritual, Prompt: "How would you rate your level of inner peace, serenity and acceptance?", Options: optionsQuality},
	{ID: "spiritual_5", Category: Spiritual, Prompt: "Do you feel in harmony with the world, the cycles of nature and the people around you?", Options: optionsYesNoFrequency},
}

// Default returns the built-in questionnaire: five questions per category.
func Default() *Catalog {
	c, err := NewWithRules(defaultQuestions, DefaultRules)
	if err != nil {
		panic(err)
	}
	return c
}
