package cart

import "log"

// Notifier receives user-facing notifications for cart mutations, the
// equivalent of the storefront's toast messages. Delivery is best-effort.
type Notifier interface {
	Notify(sessionID, title, message string)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(sessionID, title, message string) {
	log.Printf("notify session=%s: %s - %s", sessionID, title, message)
}
