package report

import (
	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/recommendation"
)

type labels struct {
	Title           string
	Patient         string
	Date            string
	Phase           string
	Scores          string
	Previous        string
	Recommendations string
	NoPrevious      string
	Footer          string
	Categories      map[catalog.Category]string
	DateLayout      string
}

var englishLabels = labels{
	Title:           "Wellness Assessment Report",
	Patient:         "Patient",
	Date:            "Date",
	Phase:           "Current phase",
	Scores:          "Category scores",
	Previous:        "previous",
	Recommendations: "Recommendations",
	NoPrevious:      "First assessment, no previous scores to compare.",
	Footer:          "Generated by Restauris",
	Categories: map[catalog.Category]string{
		catalog.Energetic: "Energetic",
		catalog.Emotional: "Emotional",
		catalog.Mental:    "Mental",
		catalog.Physical:  "Physical",
		catalog.Spiritual: "Spiritual",
	},
	DateLayout: "2006-01-02 15:04",
}

var portugueseLabels = labels{
	Title:           "Relatório de Avaliação de Bem-Estar",
	Patient:         "Paciente",
	Date:            "Data",
	Phase:           "Fase atual",
	Scores:          "Pontuação por categoria",
	Previous:        "anterior",
	Recommendations: "Recomendações",
	NoPrevious:      "Primeira avaliação, sem pontuações anteriores para comparar.",
	Footer:          "Gerado pelo Restauris",
	Categories: map[catalog.Category]string{
		catalog.Energetic: "Energético",
		catalog.Emotional: "Emocional",
		catalog.Mental:    "Mental",
		catalog.Physical:  "Físico",
		catalog.Spiritual: "Espiritual",
	},
	DateLayout: "02/01/2006 15:04",
}

func labelsFor(locale string) labels {
	if locale == recommendation.LocalePortuguese {
		return portugueseLabels
	}
	return englishLabels
}
