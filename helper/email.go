package helper

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"tiket_manager/config"

	"gopkg.in/gomail.v2"
)

type StatusPengajuanMailData struct {
	NamaUser  string
	NamaAcara string
	Status    string
}

const statusPengajuanMailTemplate = `
<p>Halo {{.NamaUser}},</p>
<p>Status pengajuan acara <b>{{.NamaAcara}}</b> Anda telah diperbarui menjadi <b>{{.Status}}</b>.</p>
<p>Silakan login untuk melihat detailnya.</p>
`

// SendStatusPengajuanEmail mengirim notifikasi perubahan status ke pengaju (async)
func SendStatusPengajuanEmail(to string, data StatusPengajuanMailData) {
	go func() {
		host := config.Config("SMTP_HOST")
		if host == "" || to == "" {
			return
		}

		tmpl, err := template.New("status_pengajuan").Parse(statusPengajuanMailTemplate)
		if err != nil {
			log.Printf("email: parse template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("email: render template: %v", err)
			return
		}

		port, _ := strconv.Atoi(config.Config("SMTP_PORT"))

		m := gomail.NewMessage()
		m.SetHeader("From", config.Config("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Status pengajuan acara: "+data.Status)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("email: send to %s failed: %v", to, err)
		}
	}()
}
