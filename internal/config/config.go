package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultFacultyPassword общий пароль режима преподавателя по умолчанию
const DefaultFacultyPassword = "CETC LIST"

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Faculty FacultyConfig `toml:"faculty"`
	Catalog CatalogConfig `toml:"catalog"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled                bool   `toml:"enabled"`
	Path                   string `toml:"path"`
	ServiceName            string `toml:"service_name"`
	CollectIntervalSeconds int    `toml:"collect_interval_seconds"`
}

// FacultyConfig доступ в режим преподавателя.
// Это не механизм безопасности, а только разделение экранов.
type FacultyConfig struct {
	Password string `toml:"password"`
}

// CourseConfig курс в каталоге
type CourseConfig struct {
	Name       string `toml:"name"`
	TotalSlots int    `toml:"-"`

	// RawTotalSlots значение total_slots из файла; nil, если ключ не задан
	RawTotalSlots *int `toml:"total_slots"`
}

// CatalogConfig фиксированный каталог курсов, дат и времени
type CatalogConfig struct {
	SlotMaxStudents  int            `toml:"slot_max_students"`
	LimitedThreshold int            `toml:"limited_threshold"`
	Dates            []string       `toml:"dates"`
	Times            []string       `toml:"times"`
	Courses          []CourseConfig `toml:"courses"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	catalog := domain.DefaultCatalog()
	courses := make([]CourseConfig, len(catalog.Courses))
	for i, c := range catalog.Courses {
		courses[i] = CourseConfig{Name: c.Name, TotalSlots: c.TotalSlots}
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:                false,
			Path:                   "/metrics",
			ServiceName:            "smc-advising-service",
			CollectIntervalSeconds: 15,
		},
		Faculty: FacultyConfig{
			Password: DefaultFacultyPassword,
		},
		Catalog: CatalogConfig{
			SlotMaxStudents:  catalog.SlotMaxStudents,
			LimitedThreshold: catalog.LimitedThreshold,
			Dates:            catalog.Dates,
			Times:            catalog.Times,
			Courses:          courses,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := newForDecode()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	return finalize(cfg, meta)
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	cfg := newForDecode()

	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return finalize(cfg, meta)
}

// newForDecode возвращает дефолтную конфигурацию без списков каталога:
// списки из файла должны заменять дефолтные целиком, а не сливаться с ними поэлементно
func newForDecode() *Config {
	cfg := Default()
	cfg.Catalog.Dates = nil
	cfg.Catalog.Times = nil
	cfg.Catalog.Courses = nil
	return cfg
}

func finalize(cfg *Config, meta toml.MetaData) (*Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	defaults := domain.DefaultCatalog()
	if cfg.Catalog.Dates == nil {
		cfg.Catalog.Dates = defaults.Dates
	}
	if cfg.Catalog.Times == nil {
		cfg.Catalog.Times = defaults.Times
	}
	if cfg.Catalog.Courses == nil {
		cfg.Catalog.Courses = Default().Catalog.Courses
	}
	// Явно заданный total_slots (в том числе 0) проверяется валидацией, пропущенный берется по умолчанию
	for i := range cfg.Catalog.Courses {
		course := &cfg.Catalog.Courses[i]
		switch {
		case course.RawTotalSlots != nil:
			course.TotalSlots = *course.RawTotalSlots
		case course.TotalSlots == 0:
			course.TotalSlots = domain.DefaultCourseTotalSlots
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	if c.Faculty.Password == "" {
		return fmt.Errorf("%w: faculty.password is required", ErrInvalidConfig)
	}

	return c.Catalog.validate()
}

func (c *CatalogConfig) validate() error {
	if c.SlotMaxStudents <= 0 {
		return fmt.Errorf("%w: catalog.slot_max_students must be positive", ErrInvalidConfig)
	}

	if c.LimitedThreshold < 0 {
		return fmt.Errorf("%w: catalog.limited_threshold must not be negative", ErrInvalidConfig)
	}

	if len(c.Courses) == 0 {
		return fmt.Errorf("%w: catalog.courses must not be empty", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Courses))
	for _, course := range c.Courses {
		name := strings.TrimSpace(course.Name)
		if name == "" {
			return fmt.Errorf("%w: course name is required", ErrInvalidConfig)
		}
		if course.TotalSlots <= 0 {
			return fmt.Errorf("%w: course %q total_slots must be positive", ErrInvalidConfig, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate course %q", ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
	}

	if err := validateUniqueList("catalog.dates", c.Dates); err != nil {
		return err
	}

	return validateUniqueList("catalog.times", c.Times)
}

func validateUniqueList(field string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, field)
	}

	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return fmt.Errorf("%w: %s contains an empty value", ErrInvalidConfig, field)
		}
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w: %s contains duplicate %q", ErrInvalidConfig, field, v)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// ToDomainCatalog конвертирует секцию каталога в domain модель
func (c *CatalogConfig) ToDomainCatalog() domain.Catalog {
	courses := make([]domain.CourseSpec, len(c.Courses))
	for i, course := range c.Courses {
		courses[i] = domain.CourseSpec{
			Name:       strings.TrimSpace(course.Name),
			TotalSlots: course.TotalSlots,
		}
	}

	return domain.Catalog{
		Courses:          courses,
		Dates:            trimAll(c.Dates),
		Times:            trimAll(c.Times),
		SlotMaxStudents:  c.SlotMaxStudents,
		LimitedThreshold: c.LimitedThreshold,
	}
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
