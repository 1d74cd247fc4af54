package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/assetmagnets/platform/internal/models"
)

var contactNewTemplate = template.Must(template.New("contact_new").Parse(`<p>A new contact message was submitted.</p>
<ul>
<li><b>From:</b> {{.Name}} &lt;{{.Email}}&gt;</li>
<li><b>Subject:</b> {{.Subject}}</li>
<li><b>Priority:</b> {{.Priority}}</li>
<li><b>Message id:</b> {{.MessageID}}</li>
</ul>`))

var digestTemplate = template.Must(template.New("digest").Parse(`<p>{{len .}} contact message(s) are waiting for a reply.</p>
<table>
<tr><th>Received</th><th>From</th><th>Subject</th><th>Priority</th></tr>
{{range .}}<tr><td>{{.CreatedAt.Format "2006-01-02 15:04"}}</td><td>{{.Name}} &lt;{{.Email}}&gt;</td><td>{{.Subject}}</td><td>{{.Priority}}</td></tr>
{{end}}</table>`))

// RenderContactNew builds the subject and body announcing one message
func RenderContactNew(p ContactNewPayload) (string, string, error) {
	var buf bytes.Buffer
	if err := contactNewTemplate.Execute(&buf, p); err != nil {
		return "", "", fmt.Errorf("failed to render contact email: %w", err)
	}
	subject := "New contact message"
	if p.Subject != "" {
		subject += ": " + p.Subject
	}
	if p.Priority == models.MessagePriorityHigh {
		subject = "[High priority] " + subject
	}
	return subject, buf.String(), nil
}

// RenderDigest builds the subject and body listing messages
func RenderDigest(messages []*models.ContactMessage, at time.Time) (string, string, error) {
	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, messages); err != nil {
		return "", "", fmt.Errorf("failed to render digest email: %w", err)
	}
	subject := fmt.Sprintf("Contact digest %s: %d new message(s)", at.Format("2006-01-02"), len(messages))
	return subject, buf.String(), nil
}
