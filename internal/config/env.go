package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	SessionSecret string
	UploadDir     string
	TemplateGlob  string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	CORSOrigins []string
}

func splitOrigins(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func LoadEnv() Env {
	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "gocart"),

		SessionSecret: getenv("SESSION_SECRET", "gocart-dev-secret-change-me"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		TemplateGlob:  getenv("TEMPLATE_GLOB", "templates/*.html"),

		SMTPHost: getenv("SMTP_HOST", "localhost"),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass: strings.TrimSpace(os.Getenv("SMTP_PASS")),
		MailFrom: getenv("MAIL_FROM", "noreply@gocart.local"),

		CORSOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}
