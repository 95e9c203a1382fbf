package adminclient

import (
	"context"
	"fmt"

	"github.com/noievoi/backend/internal/model"
)

// MessageInbox drives the admin contact-messages screen. Opening a message
// marks it read on the server; the local copy is patched only after the
// server confirms, so the unread badge never lies about stored state.
type MessageInbox struct {
	api   *Client
	guard requestGuard

	messages      []*model.ContactMessage
	pendingDelete string
}

// NewMessageInbox returns an empty inbox backed by the given API client.
func NewMessageInbox(api *Client) *MessageInbox {
	return &MessageInbox{api: api}
}

// Load refreshes the cached message list from the server.
func (b *MessageInbox) Load(ctx context.Context) error {
	if err := b.guard.begin(); err != nil {
		return err
	}
	defer b.guard.end()

	messages, err := b.api.ListContactMessages(ctx)
	if err != nil {
		return err
	}
	b.messages = messages
	return nil
}

// Messages returns the cached list, newest first.
func (b *MessageInbox) Messages() []*model.ContactMessage { return b.messages }

// UnreadCount counts cached messages still in the unread state.
func (b *MessageInbox) UnreadCount() int {
	n := 0
	for _, m := range b.messages {
		if m.Status == model.ContactStatusUnread {
			n++
		}
	}
	return n
}

// PendingDelete returns the id armed for deletion, or "".
func (b *MessageInbox) PendingDelete() string { return b.pendingDelete }

func (b *MessageInbox) find(id string) *model.ContactMessage {
	for _, m := range b.messages {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Open returns a message for display. An unread message transitions to read
// on the server first; if that fails the message is still returned so the
// admin can read it, along with the error.
func (b *MessageInbox) Open(ctx context.Context, id string) (*model.ContactMessage, error) {
	msg := b.find(id)
	if msg == nil {
		return nil, fmt.Errorf("message %s not in loaded list", id)
	}
	if msg.Status != model.ContactStatusUnread {
		return msg, nil
	}

	if err := b.guard.begin(); err != nil {
		return msg, err
	}
	defer b.guard.end()

	updated, err := b.api.UpdateContactStatus(ctx, id, model.ContactStatusRead)
	if err != nil {
		return msg, err
	}
	*msg = *updated
	return msg, nil
}

// MarkReplied flags a message as answered.
func (b *MessageInbox) MarkReplied(ctx context.Context, id string) error {
	msg := b.find(id)
	if msg == nil {
		return fmt.Errorf("message %s not in loaded list", id)
	}
	if err := b.guard.begin(); err != nil {
		return err
	}
	defer b.guard.end()

	updated, err := b.api.UpdateContactStatus(ctx, id, model.ContactStatusReplied)
	if err != nil {
		return err
	}
	*msg = *updated
	return nil
}

// RequestDelete arms a deletion. Nothing is sent until ConfirmDelete.
func (b *MessageInbox) RequestDelete(id string) { b.pendingDelete = id }

// CancelDelete disarms a pending deletion.
func (b *MessageInbox) CancelDelete() { b.pendingDelete = "" }

// ConfirmDelete issues the armed deletion and drops the message from the
// cached list once the server confirms.
func (b *MessageInbox) ConfirmDelete(ctx context.Context) error {
	if b.pendingDelete == "" {
		return ErrConfirmRequired
	}
	if err := b.guard.begin(); err != nil {
		return err
	}
	defer b.guard.end()

	id := b.pendingDelete
	if err := b.api.DeleteContactMessage(ctx, id); err != nil {
		return err
	}
	b.pendingDelete = ""

	kept := b.messages[:0]
	for _, m := range b.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	b.messages = kept
	return nil
}
