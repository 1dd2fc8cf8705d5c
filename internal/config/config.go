package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	// DefaultAdminPassword — пароль адмінки за замовчуванням (вшитий в програму,
	// це ворота для редагування контенту, а не справжня автентифікація).
	DefaultAdminPassword = "dream2024"

	// DefaultQuotaBytes — бюджет локального сховища, як у localStorage браузера.
	DefaultQuotaBytes = 5 * 1024 * 1024
)

type Config struct {
	Env    string
	Server server
	Store  store
	Admin  admin
	GitHub github
	Pages  pages
}

type server struct {
	RunAddress string
}

type store struct {
	Path       string
	QuotaBytes int64
}

type admin struct {
	Password string
}

type github struct {
	APIHost     string
	ContentPath string
	GalleryDir  string
	Branch      string
}

type pages struct {
	TemplatesDir string
}

type defaultConfig struct {
	RunAddress    string
	Env           string
	StorePath     string
	StoreQuota    int64
	AdminPassword string
	GitHubAPIHost string
	TemplatesDir  string
}

func NewConfig() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		RunAddress:    viper.GetString("run_address"),
		Env:           viper.GetString("app_env"),
		StorePath:     viper.GetString("store_path"),
		StoreQuota:    viper.GetInt64("store_quota_bytes"),
		AdminPassword: viper.GetString("admin_password"),
		GitHubAPIHost: viper.GetString("github_api_host"),
		TemplatesDir:  viper.GetString("templates_dir"),
	}

	if d.RunAddress == "" {
		d.RunAddress = ":8080"
	}
	if d.Env == "" {
		d.Env = EnvLocal
	}
	if d.StorePath == "" {
		d.StorePath = "dreamprint.db"
	}
	if d.StoreQuota <= 0 {
		d.StoreQuota = DefaultQuotaBytes
	}
	if d.AdminPassword == "" {
		d.AdminPassword = DefaultAdminPassword
	}
	if d.GitHubAPIHost == "" {
		d.GitHubAPIHost = "https://api.github.com"
	}
	if d.TemplatesDir == "" {
		d.TemplatesDir = "web/templates"
	}

	return &Config{
		Env:    d.Env,
		Server: server{RunAddress: d.RunAddress},
		Store:  store{Path: d.StorePath, QuotaBytes: d.StoreQuota},
		Admin:  admin{Password: d.AdminPassword},
		GitHub: github{
			APIHost:     d.GitHubAPIHost,
			ContentPath: "src/content.json",
			GalleryDir:  "public/gallery_images",
			Branch:      "main",
		},
		Pages: pages{TemplatesDir: d.TemplatesDir},
	}
}
