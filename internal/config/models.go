package config

type ModelInfo struct {
	ID          string
	Name        string
	Description string
}

var Models = []ModelInfo{
	{
		ID:          "gemini-1.5-flash",
		Name:        "Gemini 1.5 Flash",
		Description: "Fast and cheap, good default",
	},
	{
		ID:          "gemini-1.5-pro",
		Name:        "Gemini 1.5 Pro",
		Description: "Slower, strongest reasoning",
	},
	{
		ID:          "gemini-pro",
		Name:        "Gemini Pro",
		Description: "Legacy model",
	},
}

func GetModel(id string) *ModelInfo {
	for _, m := range Models {
		if m.ID == id {
			return &m
		}
	}
	return nil
}
