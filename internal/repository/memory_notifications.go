package repository

import (
	"database/sql"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

// NotificationsFor returns notifications addressed to the recipient, newest
// first as seeded.
func (d *Dataset) NotificationsFor(recipient string) []models.Notification {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Notification
	for _, n := range d.notifications {
		if n.Recipient == recipient {
			out = append(out, n)
		}
	}
	return out
}

// CreateNotification appends a new notification.
func (d *Dataset) CreateNotification(notification models.Notification) {
	d.mu.Lock()
	d.notifications = append(d.notifications, notification)
	d.mu.Unlock()
}

// MarkNotificationRead flips the read flag for a notification owned by the
// recipient.
func (d *Dataset) MarkNotificationRead(id, recipient string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, n := range d.notifications {
		if n.ID == id && n.Recipient == recipient {
			d.notifications[i].Read = true
			return nil
		}
	}
	return sql.ErrNoRows
}
