package cli

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/reoring/chartopts"
)

const (
	defaultEChartsURL = "https://cdn.jsdelivr.net/npm/echarts@5/dist/echarts.min.js"
	defaultAddr       = ":8080"
)

// Config is the environment-derived configuration. Flags override it.
type Config struct {
	GraphicNamespace string
	RuntimeNamespace string
	EChartsURL       string
	Addr             string
	// Lang selects the language of error reports ("en" or "ja").
	Lang string
}

// loadConfig reads .env (if present) and the CHARTOPTS_* variables.
func loadConfig() Config {
	_ = godotenv.Load()

	addr := firstNonEmpty(strings.TrimSpace(os.Getenv("CHARTOPTS_ADDR")), defaultAddr)
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	return Config{
		GraphicNamespace: firstNonEmpty(strings.TrimSpace(os.Getenv("CHARTOPTS_GRAPHIC_NAMESPACE")), chartopts.DefaultGraphicNamespace),
		RuntimeNamespace: firstNonEmpty(strings.TrimSpace(os.Getenv("CHARTOPTS_RUNTIME_NAMESPACE")), chartopts.DefaultRuntimeNamespace),
		EChartsURL:       firstNonEmpty(strings.TrimSpace(os.Getenv("CHARTOPTS_ECHARTS_URL")), defaultEChartsURL),
		Addr:             addr,
		Lang:             firstNonEmpty(strings.TrimSpace(os.Getenv("CHARTOPTS_LANG")), "en"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
