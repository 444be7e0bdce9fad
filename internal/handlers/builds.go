package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/openmohaa/mixup/internal/models"
	"github.com/openmohaa/mixup/internal/presenter"
	"github.com/openmohaa/mixup/internal/roster"
)

// CreateBuild handles POST /api/v1/builds
// @Summary Build Balanced Teams
// @Description Splits a roster into teams and balances their strength. Accepts a JSON roster or a TAB-separated text roster (Content-Type text/plain).
// @Tags Builds
// @Accept json
// @Accept plain
// @Produce json
// @Produce plain
// @Param body body models.CreateBuildRequest true "Roster"
// @Param open_skips_nonmain query bool false "Text rosters: open players get no nonmain classes"
// @Param format query string false "Response format: json or text" default(json)
// @Success 200 {object} models.BuildView
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 413 {object} map[string]string "Request Entity Too Large"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /builds [post]
func (h *Handler) CreateBuild(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	defer r.Body.Close()

	players, err := h.decodeRoster(r, body)
	if err != nil {
		h.logger.Warnw("Rejected roster", "error", err, "bodyLength", len(body))
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(players) == 0 {
		h.errorResponse(w, http.StatusBadRequest, "Roster has no players")
		return
	}

	view, err := h.mixup.CreateBuild(r.Context(), players)
	if err != nil {
		if isDomainError(err) {
			h.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("Failed to create build", "error", err, "players", len(players))
		h.errorResponse(w, http.StatusInternalServerError, "Failed to create build")
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := presenter.NewText(w).Render(view); err != nil {
			h.logger.Warnw("Failed to write text build", "error", err)
		}
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

func (h *Handler) decodeRoster(r *http.Request, body []byte) ([]models.PlayerInfo, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "text/plain" {
		rules := roster.Rules{OpenSkipsNonmain: r.URL.Query().Get("open_skips_nonmain") == "true"}
		return rules.Parse(bytes.NewReader(body))
	}

	var req models.CreateBuildRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := h.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rules := roster.Rules{OpenSkipsNonmain: req.OpenSkipsNonmain}
	players := make([]models.PlayerInfo, 0, len(req.Players))
	for i, p := range req.Players {
		info, err := rules.Infer(p.Nickname, p.Skill, p.Main, p.Additional)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		players = append(players, info)
	}
	return players, nil
}

// isDomainError reports whether err comes from invalid roster content.
func isDomainError(err error) bool {
	return errors.Is(err, models.ErrInvalidDomainValue) || errors.Is(err, models.ErrNotPlayable)
}
