package favorite

import "starblog/internal/domain"

// FavoriteRequest carries the user making the change; the target id comes
// from the URL path.
type FavoriteRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// FavoriteResponse mirrors the stored row shape: exactly one of
// characters_id / planets_id is set, the other serializes as null.
type FavoriteResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	CharactersID *int64 `json:"characters_id"`
	PlanetsID    *int64 `json:"planets_id"`
}

func ToFavoriteResponse(f *domain.Favorite) FavoriteResponse {
	resp := FavoriteResponse{
		ID:     f.ID,
		UserID: f.UserID,
	}

	id := f.Target.ID
	switch f.Target.Kind {
	case domain.TargetCharacter:
		resp.CharactersID = &id
	case domain.TargetPlanet:
		resp.PlanetsID = &id
	}

	return resp
}

func ToFavoriteListResponse(favorites []domain.Favorite) []FavoriteResponse {
	items := make([]FavoriteResponse, len(favorites))
	for i := range favorites {
		items[i] = ToFavoriteResponse(&favorites[i])
	}
	return items
}
