package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ProviderSMTP     = "smtp"
	ProviderSES      = "ses"
	ProviderMailgun  = "mailgun"
	ProviderSendGrid = "sendgrid"
)

type HTTPConfig struct {
	Host               string
	Port               int
	CORSAllowOrigins   []string
	RateLimitPerMinute int
	RateLimitBurst     int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
	RunMigrations   bool
}

type ReportConfig struct {
	DefaultRangeDays int
	Timezone         string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type MailConfig struct {
	Provider       string
	From           string
	Subject        string
	Body           string
	SMTP           SMTPConfig
	AWSRegion      string
	MailgunDomain  string
	MailgunAPIKey  string
	SendGridAPIKey string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Report      ReportConfig
	Mail        MailConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:               v.GetString("HTTP_HOST"),
			Port:               v.GetInt("HTTP_PORT"),
			CORSAllowOrigins:   splitList(v.GetString("CORS_ALLOW_ORIGINS")),
			RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
			RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
			RunMigrations:   v.GetBool("DB_RUN_MIGRATIONS"),
		},
		Report: ReportConfig{
			DefaultRangeDays: v.GetInt("REPORT_DEFAULT_RANGE_DAYS"),
			Timezone:         v.GetString("REPORT_TIMEZONE"),
		},
		Mail: MailConfig{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("MAIL_PROVIDER"))),
			From:     v.GetString("MAIL_FROM"),
			Subject:  v.GetString("MAIL_SUBJECT"),
			Body:     v.GetString("MAIL_BODY"),
			SMTP: SMTPConfig{
				Host:     v.GetString("SMTP_HOST"),
				Port:     v.GetInt("SMTP_PORT"),
				Username: v.GetString("SMTP_USERNAME"),
				Password: v.GetString("SMTP_PASSWORD"),
			},
			AWSRegion:      v.GetString("AWS_REGION"),
			MailgunDomain:  v.GetString("MAILGUN_DOMAIN"),
			MailgunAPIKey:  v.GetString("MAILGUN_API_KEY"),
			SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if len(cfg.HTTP.CORSAllowOrigins) == 0 {
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
	}
	if cfg.HTTP.RateLimitPerMinute <= 0 {
		cfg.HTTP.RateLimitPerMinute = 6
	}
	if cfg.HTTP.RateLimitBurst <= 0 {
		cfg.HTTP.RateLimitBurst = 3
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Report.DefaultRangeDays <= 0 {
		cfg.Report.DefaultRangeDays = 180
	}
	if cfg.Report.Timezone == "" {
		cfg.Report.Timezone = "UTC"
	}
	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = ProviderSMTP
	}
	if cfg.Mail.Subject == "" {
		cfg.Mail.Subject = "Journey Report"
	}
	if cfg.Mail.Body == "" {
		cfg.Mail.Body = "Please find attached the journey report."
	}
	if cfg.Mail.SMTP.Host == "" {
		cfg.Mail.SMTP.Host = "smtp.gmail.com"
	}
	if cfg.Mail.SMTP.Port == 0 {
		cfg.Mail.SMTP.Port = 587
	}
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	switch cfg.Mail.Provider {
	case ProviderSMTP:
	case ProviderSES:
		if cfg.Mail.AWSRegion == "" {
			return fmt.Errorf("AWS_REGION is required for the ses mail provider")
		}
	case ProviderMailgun:
		if cfg.Mail.MailgunDomain == "" || cfg.Mail.MailgunAPIKey == "" {
			return fmt.Errorf("MAILGUN_DOMAIN and MAILGUN_API_KEY are required for the mailgun mail provider")
		}
	case ProviderSendGrid:
		if cfg.Mail.SendGridAPIKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required for the sendgrid mail provider")
		}
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.Mail.Provider)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
