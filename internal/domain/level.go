package domain

import "fmt"

// Level representa o nível de agregação dos insights na Graph API
type Level string

const (
	LevelCampaign Level = "campaign"
	LevelAdSet    Level = "adset"
	LevelAd       Level = "ad"
)

// AllLevels na ordem campanha -> conjunto -> anúncio
var AllLevels = []Level{LevelCampaign, LevelAdSet, LevelAd}

func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelCampaign, LevelAdSet, LevelAd:
		return Level(s), nil
	}
	return "", fmt.Errorf("level inválido: %q", s)
}
