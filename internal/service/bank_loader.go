package service

import (
	"context"
	"fmt"
	"os"

	"mindpulse/internal/assessment"
	"mindpulse/internal/repository"
)

// Where a loaded question bank came from
const (
	BankSourceFile     = "file"
	BankSourceDatabase = "database"
	BankSourceBundled  = "bundled"
)

// LoadBank picks the question bank to serve: the YAML file when path is
// set, else the stored default document, else the bundled bank. A file or
// stored document that fails validation is an error, not a fallback.
func LoadBank(ctx context.Context, path string, repo repository.QuestionBankRepo) (*assessment.Bank, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read question bank: %w", err)
		}
		bank, err := assessment.ParseBank(data)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load question bank %s: %w", path, err)
		}
		return bank, BankSourceFile, nil
	}

	if repo != nil {
		doc, err := repo.Get(ctx, repository.DefaultBankID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to get question bank: %w", err)
		}
		if doc != nil {
			bank, err := assessment.NewBank(*doc)
			if err != nil {
				return nil, "", fmt.Errorf("failed to load stored question bank: %w", err)
			}
			return bank, BankSourceDatabase, nil
		}
	}

	return assessment.DefaultBank(), BankSourceBundled, nil
}
