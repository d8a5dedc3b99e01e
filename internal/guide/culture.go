package guide

import (
	"fmt"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

// Culture assembles the culture tab content for a resolved entry.
func Culture(e domain.GuideEntry) domain.Culture {
	return domain.Culture{
		Language:  e.Language,
		Phrases:   e.Phrases,
		Etiquette: e.Etiquette,
		Food:      e.Food,
		Tips:      PracticalTips(e.Language),
	}
}

// PracticalTips returns the general travel tips, phrased for language.
func PracticalTips(language string) []domain.Tip {
	return []domain.Tip{
		{
			Title:   "Transportation",
			Content: fmt.Sprintf("Research local transport options. Learn phrases like 'Where is the metro/bus station?' in %s", language),
		},
		{
			Title:   "Money & Currency",
			Content: "Check local currency. Have small bills for markets. Notify your bank of travel plans.",
		},
		{
			Title:   "Safety",
			Content: "Keep valuables secure. Know emergency numbers. Be aware of common tourist scams.",
		},
		{
			Title:   "Communication",
			Content: fmt.Sprintf("Learn basic %s phrases. Download translation app. Get local SIM card if needed.", language),
		},
	}
}
