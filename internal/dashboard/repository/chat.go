package repository

import (
	"sort"
	"time"

	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/store"
)

type Chat struct {
	s *store.Store
}

func NewChat(s *store.Store) *Chat {
	return &Chat{s: s}
}

// List returns all messages ordered ascending by creation timestamp.
func (r *Chat) List() []dashboard.ChatMessage {
	var out []dashboard.ChatMessage
	r.s.View(func(d *dashboard.Data) {
		out = append(out, d.ChatMessages...)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Create appends a message with the next chat id. When displayTime is empty a
// short clock string is computed at call time.
func (r *Chat) Create(role, content, displayTime string) (dashboard.ChatMessage, error) {
	if displayTime == "" {
		displayTime = time.Now().Format("3:04 PM")
	}

	var created dashboard.ChatMessage
	err := r.s.Update(func(d *dashboard.Data) error {
		created = dashboard.ChatMessage{
			ID:        d.NextChatID,
			Role:      role,
			Content:   content,
			Time:      displayTime,
			CreatedAt: time.Now(),
		}
		d.ChatMessages = append(d.ChatMessages, created)
		d.NextChatID++
		return nil
	})
	return created, err
}

// Clear resets the history to the single seeded welcome message (id 1) and
// the id counter to 2, so the next message created is always id 2.
func (r *Chat) Clear() error {
	return r.s.Update(func(d *dashboard.Data) error {
		d.ChatMessages = []dashboard.ChatMessage{dashboard.WelcomeMessage()}
		d.NextChatID = 2
		return nil
	})
}
