package news

import (
	"fmt"
	"strings"
	"time"
)

// Item is one news entry, also used as a TV carousel slide source.
type Item struct {
	ID          string
	Title       string
	Body        string
	PublishedAt time.Time
}

func (n Item) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("news id is required")
	}
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("news title is required")
	}

	return nil
}
