package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"jotter/m/domain"
	"jotter/m/internal/logging"
	"jotter/m/internal/store"
)

// Users and Notes are the store operations the loader needs.
type Users interface {
	Register(ctx context.Context, p store.RegisterParams) (int64, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Notes interface {
	Create(ctx context.Context, userID int64, title, content string) (*domain.Note, error)
	Update(ctx context.Context, userID, noteID int64, u domain.NoteUpdate) (*domain.Note, error)
}

// LoadNotes ingests demo accounts and notes from a CSV with the header
// username,password,title,content,is_completed. Unknown users are registered
// on first sight. Bad rows are skipped. It returns the number of notes created.
func LoadNotes(ctx context.Context, users Users, notes Notes, csvPath string, log logging.Logger) int {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Warn(ctx, "unable to open seed file", "path", csvPath, "error", err)
		return 0
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Warn(ctx, "unable to read seed header", "error", err)
		return 0
	}

	ids := make(map[string]int64)
	rows := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn(ctx, "unable to read seed row", "line", line, "error", err)
			continue
		}
		if len(record) < 4 {
			log.Warn(ctx, "short seed row", "line", line)
			continue
		}
		username := strings.TrimSpace(record[0])
		password := record[1]
		title := strings.TrimSpace(record[2])
		content := strings.TrimSpace(record[3])
		completed := false
		if len(record) > 4 {
			completed, _ = strconv.ParseBool(strings.TrimSpace(record[4]))
		}

		userID, ok := ids[username]
		if !ok {
			userID, err = ensureUser(ctx, users, username, password)
			if err != nil {
				log.Warn(ctx, "unable to seed user", "line", line, "username", username, "error", err)
				continue
			}
			ids[username] = userID
		}

		note, err := notes.Create(ctx, userID, title, content)
		if err != nil {
			log.Warn(ctx, "unable to seed note", "line", line, "error", err)
			continue
		}
		if completed {
			if _, err := notes.Update(ctx, userID, note.ID, domain.NoteUpdate{Title: title, Content: content, IsCompleted: true}); err != nil {
				log.Warn(ctx, "unable to complete seeded note", "line", line, "error", err)
			}
		}
		rows++
	}

	log.Info(ctx, "seeded notes", "path", csvPath, "notes", rows, "users", len(ids))
	return rows
}

func ensureUser(ctx context.Context, users Users, username, password string) (int64, error) {
	u, err := users.FindByUsername(ctx, username)
	if err == nil {
		return u.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}
	return users.Register(ctx, store.RegisterParams{Username: username, Password: password})
}
