package notification

import (
	"bytes"
	"fmt"
	"text/template"
)

type mailTemplate struct {
	subject string
	body    *template.Template
}

type templateData struct {
	Name   string
	Fields map[string]string
}

var builtinTemplates = map[string][2]string{
	TemplateLeaveApproved: {
		"Pengajuan cuti disetujui",
		`Halo {{.Name}},

Pengajuan cuti Anda untuk {{.Fields.start_date}} s.d. {{.Fields.end_date}} ({{.Fields.days}} hari) telah disetujui.
Sisa cuti tahun {{.Fields.year}}: {{.Fields.balance}} hari.
`,
	},
	TemplateLeaveRejected: {
		"Pengajuan cuti ditolak",
		`Halo {{.Name}},

Pengajuan cuti Anda untuk {{.Fields.start_date}} s.d. {{.Fields.end_date}} ditolak.
Catatan: {{.Fields.note}}
`,
	},
	TemplateLeaveCollective: {
		"Cuti bersama",
		`Halo {{.Name}},

Cuti bersama "{{.Fields.title}}" ditetapkan pada {{.Fields.start_date}} s.d. {{.Fields.end_date}} ({{.Fields.days}} hari) dan memotong saldo cuti Anda.
`,
	},
	TemplateSpecialLeaveApproved: {
		"Cuti khusus disetujui",
		`Halo {{.Name}},

Pengajuan {{.Fields.title}} untuk {{.Fields.start_date}} s.d. {{.Fields.end_date}} telah disetujui.
`,
	},
	TemplateSpecialLeaveRejected: {
		"Cuti khusus ditolak",
		`Halo {{.Name}},

Pengajuan {{.Fields.title}} untuk {{.Fields.start_date}} s.d. {{.Fields.end_date}} ditolak.
Catatan: {{.Fields.note}}
`,
	},
}

// Renderer turns a template name and fields into a subject and plain-text body.
type Renderer struct {
	templates map[string]mailTemplate
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]mailTemplate, len(builtinTemplates))}
	for name, t := range builtinTemplates {
		body, err := template.New(name).Option("missingkey=error").Parse(t[1])
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = mailTemplate{subject: t[0], body: body}
	}
	return r, nil
}

func (r *Renderer) Render(name string, recipient Recipient, fields map[string]string) (string, string, error) {
	t, ok := r.templates[name]
	if !ok {
		return "", "", ErrUnknownTemplate
	}
	if fields == nil {
		fields = map[string]string{}
	}

	var buf bytes.Buffer
	if err := t.body.Execute(&buf, templateData{Name: recipient.Name, Fields: fields}); err != nil {
		return "", "", fmt.Errorf("render template %s: %w", name, err)
	}
	return t.subject, buf.String(), nil
}
