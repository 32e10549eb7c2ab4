package httpapi

import (
	"net/http"
)

type tvSlidesDTO struct {
	Standings  []teamDTO   `json:"standings"`
	Upcoming   []matchDTO  `json:"upcoming"`
	News       []newsDTO   `json:"news"`
	TopPlayers []playerDTO `json:"topPlayers"`
}

func (h *Handler) TVSlides(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TVSlides")
	defer span.End()

	slides, err := h.services.TV.Slides(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "tv slides failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := tvSlidesDTO{
		Standings:  make([]teamDTO, 0, len(slides.Standings)),
		Upcoming:   make([]matchDTO, 0, len(slides.Upcoming)),
		News:       make([]newsDTO, 0, len(slides.News)),
		TopPlayers: playersToDTO(slides.TopPlayers),
	}
	for _, t := range slides.Standings {
		dto.Standings = append(dto.Standings, teamToDTO(t))
	}
	for _, m := range slides.Upcoming {
		dto.Upcoming = append(dto.Upcoming, matchToDTO(m))
	}
	for _, n := range slides.News {
		dto.News = append(dto.News, newsToDTO(n))
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}
