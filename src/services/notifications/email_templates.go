package notifications

import (
	"bytes"
	"html/template"
)

type RosterEmailData struct {
	Email        string
	ActivityName string
	Schedule     string
	SignedUp     bool
}

var rosterEmailTmpl = template.Must(template.New("roster").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Mergington High School</h2>
  {{if .SignedUp -}}
  <p>Hi {{.Email}}, you are signed up for <strong>{{.ActivityName}}</strong>.</p>
  {{- if .Schedule}}
  <p>Schedule: {{.Schedule}}</p>
  {{- end}}
  {{- else -}}
  <p>Hi {{.Email}}, you have been unregistered from <strong>{{.ActivityName}}</strong>.</p>
  {{- end}}
</body>
</html>
`))

// RosterSubject is the mail subject line for a signup or unregister.
func RosterSubject(activityName string, signedUp bool) string {
	if signedUp {
		return "Signed up for " + activityName
	}
	return "Unregistered from " + activityName
}

func RenderRosterEmailHTML(data RosterEmailData) (string, error) {
	var buf bytes.Buffer
	if err := rosterEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
