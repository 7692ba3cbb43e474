package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas de domínio
var (
	codesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codigos_gerados_total",
			Help: "Códigos emitidos, por modo de numeração (auto ou manual)",
		},
		[]string{"modo"},
	)

	allocationConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "codigos_conflitos_alocacao_total",
			Help: "Tentativas de alocação que encontraram o número já ocupado",
		},
	)

	allocationAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "codigos_tentativas_alocacao",
			Help:    "Tentativas necessárias por alocação automática",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		},
	)

	codesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "codigos_excluidos_total",
			Help: "Códigos excluídos, liberando o número",
		},
	)

	contractorsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contratantes_registrados_total",
			Help: "Contratantes cadastrados a partir do nome completo",
		},
	)
)
