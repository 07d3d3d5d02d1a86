package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"livraria/internal/config"
	"livraria/internal/platform/database"
	"livraria/internal/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var seedColumns = []string{"titulo", "autor", "estoque", "valor", "vendas"}

var (
	titleWords = []string{"O", "Senhor", "Livro", "Noite", "Mar", "Cidade", "Tempo", "Jardim", "Segredo", "Caminho", "Sol", "Vento"}
	authors    = []string{"Machado de Assis", "Clarice Lispector", "Jorge Amado", "Cecília Meireles", "Graciliano Ramos", "Rachel de Queiroz", "Érico Veríssimo", "Lygia Fagundes Telles"}
)

func main() {
	count := flag.Int("count", 1000, "number of books to insert")
	truncate := flag.Bool("truncate", false, "empty livros and reset codes before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	if *count < 0 {
		log.Fatal("count must not be negative", zap.Int("count", *count))
	}

	ctx := context.Background()
	pool, err := database.Open(ctx, cfg.DatabaseDSN, cfg.DBMaxConns)
	if err != nil {
		log.Fatal("cannot open database", zap.Error(err))
	}
	defer pool.Close()

	if *truncate {
		if _, err := pool.Exec(ctx, `TRUNCATE livros RESTART IDENTITY`); err != nil {
			log.Fatal("failed to truncate livros", zap.Error(err))
		}
		log.Info("livros truncated")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now()

	// COPY is much faster than individual inserts
	inserted, err := pool.CopyFrom(ctx, pgx.Identifier{"livros"}, seedColumns, pgx.CopyFromRows(randomRows(rng, *count)))
	if err != nil {
		log.Fatal("failed to copy books", zap.Error(err))
	}

	log.Info("seed complete",
		zap.Int64("inserted", inserted),
		zap.Duration("took", time.Since(start)),
	)
}

func randomRows(rng *rand.Rand, n int) [][]any {
	rows := make([][]any, 0, n)
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("%s %s %s",
			titleWords[rng.Intn(len(titleWords))],
			titleWords[rng.Intn(len(titleWords))],
			titleWords[rng.Intn(len(titleWords))],
		)
		rows = append(rows, []any{
			title,
			authors[rng.Intn(len(authors))],
			int32(rng.Intn(200)),
			numeric(randomPrice(rng)),
			int32(rng.Intn(5000)),
		})
	}
	return rows
}

// randomPrice is between 5.00 and 250.00 with cent precision.
func randomPrice(rng *rand.Rand) decimal.Decimal {
	return decimal.New(int64(500+rng.Intn(24501)), -2)
}

func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}
