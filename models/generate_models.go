package models

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Schema tooling, enabled from main.go through environment switches:

  GENERATE_MODELS=true         migrate the documents table, print the column
                               report and write typed query helpers to ./generated
  GENERATE_COLUMN_REPORT=true  only print the column report

The column report lists columns that exist in the database but have no field
in the Go row struct, e.g.

	=== COLUMN MISMATCH REPORT ===
	--- Table: documents ---
	Found 1 columns not accounted for in model:
	  - legacy_slug
	=== SUMMARY ===
	Total mismatched columns across all tables: 1
*/

// storedTables maps each table to the struct that backs it.
var storedTables = map[string]any{
	Document{}.TableName(): Document{},
}

func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	verbose := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel: logger.Info,
			Colorful: true,
		},
	)
	session := db.Session(&gorm.Session{
		Logger:                 verbose,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	fmt.Println("Migrating documents table...")
	if err := session.AutoMigrate(&Document{}); err != nil {
		fmt.Printf("Error during models migration: %v\n", err)
		os.Exit(1)
	}

	GenerateColumnMismatchReport(session)

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(session)
	g.ApplyBasic(Document{})
	g.Execute()
	fmt.Println("Model generation complete!")
}

// GenerateColumnMismatchReport prints, per table, the database columns that
// no struct field maps to.
func GenerateColumnMismatchReport(db *gorm.DB) {
	fmt.Println("=== COLUMN MISMATCH REPORT ===")

	total := 0
	for table, row := range storedTables {
		fmt.Printf("\n--- Table: %s ---\n", table)

		columns, err := tableColumns(db, table)
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", table, err)
			continue
		}

		missing := ColumnMismatches(columns, modelColumns(row))
		if len(missing) == 0 {
			fmt.Println("All columns are accounted for in the model.")
			continue
		}
		fmt.Printf("Found %d columns not accounted for in model:\n", len(missing))
		for _, col := range missing {
			fmt.Printf("  - %s\n", col)
		}
		total += len(missing)
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Total mismatched columns across all tables: %d\n", total)
}

// GenerateColumnMismatchReportStandalone checks connectivity and prints the
// report without migrating.
func GenerateColumnMismatchReportStandalone(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	GenerateColumnMismatchReport(db)
}

func tableColumns(db *gorm.DB, table string) ([]string, error) {
	var columns []string
	err := db.Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ? AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position`, table).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s does not exist yet", table)
	}
	return columns, nil
}

// modelColumns returns the column names declared in the gorm tags of row.
func modelColumns(row any) []string {
	var columns []string
	t := reflect.TypeOf(row)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		for _, part := range strings.Split(field.Tag.Get("gorm"), ";") {
			if name, ok := strings.CutPrefix(strings.TrimSpace(part), "column:"); ok {
				columns = append(columns, name)
			}
		}
	}
	return columns
}

// ColumnMismatches returns the entries of dbColumns that are not in modelColumns,
// keeping database order.
func ColumnMismatches(dbColumns, modelColumns []string) []string {
	known := make(map[string]struct{}, len(modelColumns))
	for _, c := range modelColumns {
		known[c] = struct{}{}
	}
	var missing []string
	for _, c := range dbColumns {
		if _, ok := known[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}
