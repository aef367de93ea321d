// Package whatsapp builds message-prefilled wa.me links. Pure string
// formatting; nothing here touches the network.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizePhone strips every non-digit character from a phone number, e.g.
// "+250 788-000-000" becomes "250788000000".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link returns a wa.me URL opening a chat with the given number, prefilled
// with message.
func Link(phone, message string) string {
	link := "https://wa.me/" + NormalizePhone(phone)
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

// PlotMessage is the prefilled inquiry text for a specific plot.
func PlotMessage(title, location string) string {
	return fmt.Sprintf("Hi, I'm interested in the %s in %s. Can you provide more information?", title, location)
}

// GeneralMessage is the prefilled text for a general inquiry.
func GeneralMessage() string {
	return "Hi, I'm interested in learning more about your land plots. Can you help me?"
}
