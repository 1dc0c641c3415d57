package plans

// Plan is one of the fixed subscription tiers. Prices are localized display
// strings, not amounts; all money handling downstream treats them as opaque.
type Plan struct {
	Name     string   `json:"nome"`
	Price    string   `json:"preco"`
	Features []string `json:"recursos"`
}

var tiers = []Plan{
	{
		Name:     "Básico",
		Price:    "R$ 19,90/mês",
		Features: []string{"Acesso a vídeos básicos", "Qualidade SD", "1 tela simultânea"},
	},
	{
		Name:     "Premium",
		Price:    "R$ 39,90/mês",
		Features: []string{"Acesso a todos os vídeos", "Qualidade Full HD", "3 telas simultâneas", "Conteúdo exclusivo"},
	},
	{
		Name:     "Master",
		Price:    "R$ 59,90/mês",
		Features: []string{"Acesso a todos os vídeos", "Qualidade 4K", "Telas ilimitadas", "Conteúdo exclusivo", "Suporte prioritário"},
	},
}

// All returns the fixed plan tiers in display order.
func All() []Plan {
	out := make([]Plan, len(tiers))
	copy(out, tiers)
	return out
}

// ByName resolves a tier by its display name.
func ByName(name string) (Plan, bool) {
	for _, p := range tiers {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}
