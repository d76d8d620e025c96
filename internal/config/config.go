package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	UploadDir     string `mapstructure:"UPLOAD_DIR"`
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
	FrontendURL   string `mapstructure:"FRONTEND_URL"`

	// Pricing. NightlyRate is in the local currency (RSD); ExchangeRate is
	// how many local units buy one EUR.
	NightlyRate  int     `mapstructure:"NIGHTLY_RATE"`
	ExchangeRate float64 `mapstructure:"EXCHANGE_RATE"`
	RoomCount    int     `mapstructure:"ROOM_COUNT"`

	// Bank details shown on invoices.
	BankName      string `mapstructure:"BANK_NAME"`
	BankAccount   string `mapstructure:"BANK_ACCOUNT"`
	BankRecipient string `mapstructure:"BANK_RECIPIENT"`

	// Upload limits in bytes.
	MaxIDPhotoSize      int64 `mapstructure:"MAX_ID_PHOTO_SIZE"`
	MaxPaymentProofSize int64 `mapstructure:"MAX_PAYMENT_PROOF_SIZE"`

	DiscordClientID               string   `mapstructure:"DISCORD_CLIENT_ID"`
	DiscordClientSecret           string   `mapstructure:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURL            string   `mapstructure:"DISCORD_REDIRECT_URL"`
	DiscordBotToken               string   `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string   `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	DiscordAdminIDs               []string `mapstructure:"DISCORD_ADMIN_IDS"`

	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `mapstructure:"TELEGRAM_CHAT_ID"`

	JWTSecret string `mapstructure:"JWT_SECRET"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "guesthouse.db")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("PUBLIC_BASE_URL", "http://127.0.0.1:8080")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:4000")
	viper.SetDefault("NIGHTLY_RATE", 4500)
	viper.SetDefault("EXCHANGE_RATE", 117.2)
	viper.SetDefault("ROOM_COUNT", 5)
	viper.SetDefault("BANK_NAME", "Banca Intesa")
	viper.SetDefault("BANK_ACCOUNT", "160-0000000000000-00")
	viper.SetDefault("BANK_RECIPIENT", "Vila Verde")
	viper.SetDefault("MAX_ID_PHOTO_SIZE", 5<<20)
	viper.SetDefault("MAX_PAYMENT_PROOF_SIZE", 10<<20)
	viper.SetDefault("DISCORD_REDIRECT_URL", "http://127.0.0.1:8080/auth/discord/callback")

	viper.BindEnv("DISCORD_CLIENT_ID")
	viper.BindEnv("DISCORD_CLIENT_SECRET")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("DISCORD_ADMIN_IDS")
	viper.BindEnv("TELEGRAM_BOT_TOKEN")
	viper.BindEnv("TELEGRAM_CHAT_ID")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("PUBLIC_BASE_URL")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("NIGHTLY_RATE")
	viper.BindEnv("EXCHANGE_RATE")
	viper.BindEnv("ROOM_COUNT")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
