package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ligaescolar/kings-api/internal/usecase"
)

const readCookieMaxAge = 365 * 24 * 60 * 60

// readNotificationsCookieName is per user so shared hallway computers do
// not leak read state between accounts.
func readNotificationsCookieName(userID string) string {
	return fmt.Sprintf("read_notifications_%s", userID)
}

func readNotificationIDs(r *http.Request, userID string) map[string]bool {
	cookie, err := r.Cookie(readNotificationsCookieName(userID))
	if err != nil {
		return nil
	}

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	var ids []string
	if err := jsoniter.UnmarshalFromString(raw, &ids); err != nil {
		return nil
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func writeReadNotificationsCookie(w http.ResponseWriter, userID string, ids []string) {
	raw, err := jsoniter.MarshalToString(ids)
	if err != nil {
		return
	}

	// Not HttpOnly: the TV frontend reads the same cookie client-side.
	http.SetCookie(w, &http.Cookie{
		Name:     readNotificationsCookieName(userID),
		Value:    url.QueryEscape(raw),
		Path:     "/",
		MaxAge:   readCookieMaxAge,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNotifications")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	feed, err := h.services.Notifications.Feed(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "notification feed failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	read := readNotificationIDs(r, principal.UserID)
	for i := range feed {
		feed[i].Read = read[feed[i].ID]
	}

	writeSuccess(ctx, w, http.StatusOK, feed)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkNotificationRead")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	notificationID := strings.TrimSpace(r.PathValue("notificationID"))
	if notificationID == "" {
		writeError(ctx, w, fmt.Errorf("%w: notification id is required", usecase.ErrInvalidInput))
		return
	}

	read := readNotificationIDs(r, principal.UserID)
	if read[notificationID] {
		writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "already read"})
		return
	}

	ids := make([]string, 0, len(read)+1)
	for id := range read {
		ids = append(ids, id)
	}
	ids = append(ids, notificationID)
	writeReadNotificationsCookie(w, principal.UserID, ids)

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "read"})
}
