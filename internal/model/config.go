package model

type Config struct {
	DataDir string       `yaml:"data_dir"`
	Editor  string       `yaml:"editor"`
	Store   StoreConfig  `yaml:"store"`
	Server  ServerConfig `yaml:"server"`
	Backup  BackupConfig `yaml:"backup"`
	Export  ExportConfig `yaml:"export"`
	Log     LogConfig    `yaml:"log"`
}

type StoreConfig struct {
	Engine string      `yaml:"engine"` // json, sqlite, redis, memory
	Path   string      `yaml:"path"`   // json/sqlite file, relative to data_dir
	Redis  RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type ServerConfig struct {
	Addr      string `yaml:"addr"`
	PublicDir string `yaml:"public_dir"`
}

type BackupConfig struct {
	Enable    bool   `yaml:"enable"`
	Time      string `yaml:"time"`      // HH:MM
	Retention int    `yaml:"retention"` // days
	BackupDir string `yaml:"backup_dir"`
}

type ExportConfig struct {
	Dir        string `yaml:"dir"`
	Bucket     string `yaml:"bucket"`
	Prefix     string `yaml:"prefix"`
	AWSProfile string `yaml:"aws_profile"`
	AWSRegion  string `yaml:"aws_region"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() Config {
	return Config{
		DataDir: "~/.config/dayspark/data",
		Editor:  "vim",
		Store: StoreConfig{
			Engine: "json",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "dayspark:",
			},
		},
		Server: ServerConfig{
			Addr:      ":3000",
			PublicDir: "./web",
		},
		Backup: BackupConfig{
			Enable:    false,
			Time:      "23:30",
			Retention: 30,
			BackupDir: "~/.config/dayspark/backup",
		},
		Export: ExportConfig{
			Dir:       ".",
			Prefix:    "dayspark/",
			AWSRegion: "us-east-1",
		},
		Log: LogConfig{
			File:  "~/.config/dayspark/logs/dayspark.log",
			Level: "info",
		},
	}
}
