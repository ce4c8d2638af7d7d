package handlers

import "net/http"

type categoryDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (a *App) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := a.Categories.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list categories failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load categories")
		return
	}
	items := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoryDTO{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
