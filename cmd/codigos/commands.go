package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/models"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/seed"
	"github.com/a2z-projetos/app-codigos-projeto/internal/services"
	"github.com/a2z-projetos/app-codigos-projeto/internal/utils"
	"github.com/a2z-projetos/app-codigos-projeto/internal/version"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrar",
		Short: "Aplica as migrações ou cria as coleções do backend configurado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServices(cmd.Context(), func(store repository.Store, _ *services.CodeService, _ *services.OptionService) error {
				if err := store.Ping(cmd.Context()); err != nil {
					return fmt.Errorf("armazenamento indisponível: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Armazenamento %s pronto\n", a.cfg.StorageBackend)
				return nil
			})
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "semear",
		Short: "Cadastra o dicionário padrão (ou um YAML próprio) sem alterar opções existentes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dict, err := loadDictionary(file)
			if err != nil {
				return err
			}
			return a.withServices(cmd.Context(), func(store repository.Store, _ *services.CodeService, _ *services.OptionService) error {
				result, err := seed.Seed(cmd.Context(), store, dict, a.logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d opções criadas, %d já existentes\n", result.Created, result.Skipped)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "arquivo", "f", "", "dicionário em YAML; padrão é o embutido")
	return cmd
}

func loadDictionary(file string) (map[codigo.Category][]codigo.CategoryOption, error) {
	if file == "" {
		return seed.Default()
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", file, err)
	}
	return seed.Parse(data)
}

func newAbbreviateCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "abreviar <nome completo>",
		Short: "Mostra a abreviação gerada para um contratante",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			abbreviation, err := codigo.Abbreviate(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), codigo.ContractorLabel(abbreviation, name))
			return nil
		},
	}
}

func newNextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "proximo",
		Short: "Mostra o próximo número sequencial livre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServices(cmd.Context(), func(_ repository.Store, codes *services.CodeService, _ *services.OptionService) error {
				numero, err := codes.NextNumber(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), numero)
				return nil
			})
		},
	}
}

func newLegendCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "legenda <codigo>",
		Short: "Traduz cada segmento de um código para o rótulo do dicionário",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := models.ParseLegendFormat(format)
			if err != nil {
				return err
			}
			return a.withServices(cmd.Context(), func(_ repository.Store, codes *services.CodeService, _ *services.OptionService) error {
				items, err := codes.LegendFor(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printLegend(cmd, f, args[0], items)
			})
		},
	}
	cmd.Flags().StringVar(&format, "formato", "markdown", "formato da saída: json, markdown ou html")
	return cmd
}

func printLegend(cmd *cobra.Command, format models.LegendFormat, identifier string, items []codigo.LegendItem) error {
	switch format {
	case models.LegendFormatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(models.LegendResponse{
			Codigo: identifier,
			Valido: !codigo.IsLegendError(items),
			Itens:  items,
		})
	case models.LegendFormatHTML:
		fmt.Fprint(cmd.OutOrStdout(), utils.MarkdownToHTML(codigo.LegendMarkdown(identifier, items)))
	default:
		fmt.Fprint(cmd.OutOrStdout(), codigo.LegendMarkdown(identifier, items))
	}
	return nil
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		req    models.GenerateCodeRequest
		author string
	)
	cmd := &cobra.Command{
		Use:   "codificar",
		Short: "Emite um código com os valores informados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, err := req.FieldSet()
			if err != nil {
				return err
			}
			return a.withServices(cmd.Context(), func(_ repository.Store, codes *services.CodeService, _ *services.OptionService) error {
				saved, err := codes.Generate(cmd.Context(), services.GenerateRequest{
					Name:   req.Name,
					Fields: fields,
				}, services.Author{Name: author})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), saved.Identifier)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Name, "nome", "", "nome do projeto")
	for _, f := range []struct {
		name   string
		target *string
	}{
		{"contratante", &req.Contratante},
		{"empresa", &req.Empresa},
		{"localidade", &req.Localidade},
		{"servico", &req.Servico},
		{"sistema", &req.Sistema},
		{"componente", &req.Componente},
		{"etapa", &req.Etapa},
		{"disciplina", &req.Disciplina},
		{"tipo-documento", &req.TipoDocumento},
	} {
		flags.StringVar(f.target, f.name, "", "valor de "+f.name)
		_ = cmd.MarkFlagRequired(f.name)
	}
	_ = cmd.MarkFlagRequired("nome")
	flags.StringVar(&req.Numero, "numero", "", "número sequencial; vazio aloca o próximo livre")
	flags.StringVar(&req.Data, "data", time.Now().Format(models.DateLayout), "data no formato AAAA-MM-DD")
	flags.StringVar(&req.Versao, "versao", codigo.DefaultVersion, "versão")
	flags.StringVar(&author, "autor", os.Getenv("USER"), "autor registrado")
	return cmd
}

func newVersionCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "versao",
		Short: "Mostra a versão do binário",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "codigos %s (commit %s, %s, %s)\n", info.Version, info.Commit, info.Date, info.GoVersion)
		},
	}
}
