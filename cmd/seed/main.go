// Command seed loads a handful of sample products and contributors through
// the MySQL adapters, for local development.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/minhvo/catalog-service/internal/adapter/storage"
	"github.com/minhvo/catalog-service/internal/core/domain"
)

func main() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/catalog?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}

	products := storage.NewMySQLProductAdapter(db)
	contributors := storage.NewMySQLContributorAdapter(db)

	sampleProducts := []domain.Product{
		{Name: "Mechanical Keyboard", Description: "87-key, hot-swappable", PriceCents: 8900, Stock: 42},
		{Name: "USB-C Dock", Description: "Dual HDMI, 100W PD", PriceCents: 12900, Stock: 17},
		{Name: "Laptop Stand", Description: "Aluminium, foldable", PriceCents: 3500, Stock: 88},
	}
	for _, p := range sampleProducts {
		created, err := products.Create(ctx, p)
		if err != nil {
			log.Fatalf("seed product %q: %v", p.Name, err)
		}
		fmt.Printf("product %d: %s\n", created.ID, created.Name)
	}

	sampleContributors := []domain.Contributor{
		{Name: "Alice Tran", Email: "alice@example.com"},
		{Name: "Bob Keller", Email: "bob@example.com"},
	}
	for _, c := range sampleContributors {
		created, err := contributors.Create(ctx, c)
		if err != nil {
			log.Fatalf("seed contributor %q: %v", c.Name, err)
		}
		fmt.Printf("contributor %d: %s\n", created.ID, created.Name)
	}
}
