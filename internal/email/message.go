// Package email renders outgoing notification messages.
package email

import (
	"fmt"
	"html"
	"strings"

	"petvault/internal/port"
)

// Message is a rendered email ready for delivery.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// PetURL returns the frontend link to a pet's profile.
func PetURL(frontendURL, petID string) string {
	return fmt.Sprintf("%s/pets/%s", strings.TrimRight(frontendURL, "/"), petID)
}

// RenderPetShared builds the notification sent when a pet is shared with a user.
func RenderPetShared(frontendURL string, msg port.PetSharedEmail) Message {
	link := PetURL(frontendURL, msg.PetID)
	subject := fmt.Sprintf("%s shared %s with you on PetVault", msg.SharedByName, msg.PetName)
	text := fmt.Sprintf("Hi %s,\n\n%s gave you %s access to %s's health records.\n\nOpen the profile:\n%s\n\nPetVault",
		msg.ToName, msg.SharedByName, msg.Role, msg.PetName, link)

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s was shared with you</h2>
  <p>Hi %s,</p>
  <p>%s gave you <strong>%s</strong> access to %s's health records.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #0F766E; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open profile</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">PetVault - Pet Health Records</p>
</body>
</html>`,
		html.EscapeString(msg.PetName), html.EscapeString(msg.ToName), html.EscapeString(msg.SharedByName),
		html.EscapeString(msg.Role), html.EscapeString(msg.PetName), html.EscapeString(link))

	return Message{Subject: subject, HTML: body, Text: text}
}
