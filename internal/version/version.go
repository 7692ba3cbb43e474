// Package version expõe a identificação do build, preenchida via -ldflags:
//
//	go build -ldflags "-X github.com/a2z-projetos/app-codigos-projeto/internal/version.Version=v1.2.0"
package version

import "runtime"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info descreve o binário em execução
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Get retorna as informações do build atual
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}
}
