package memory

import (
	"testing"

	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/repositorytest"
)

func TestStore(t *testing.T) {
	repositorytest.Run(t, func(t *testing.T) repository.Store {
		return New()
	})
}
