package store

import (
	"database/sql"
	"fmt"
)

// Launch history operations

// RecordLaunch appends a usage event for id and prunes rows that fell out of
// the long-term window, in one transaction.
func (s *Store) RecordLaunch(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return wrapErr("record launch", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO launch_history (item_id) VALUES (?)`, id); err != nil {
		return wrapErr("record launch", err)
	}

	// Keep only the newest LongTermWindowSize rows. With fewer rows than
	// the capacity the OFFSET misses and nothing is deleted.
	_, err = tx.Exec(`
		DELETE FROM launch_history WHERE seq < (
			SELECT seq FROM launch_history ORDER BY seq DESC LIMIT 1 OFFSET ?
		)
	`, LongTermWindowSize-1)
	if err != nil {
		return wrapErr("record launch", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapErr("record launch", err)
	}
	s.changed.Raise()
	return nil
}

// WindowCounts returns, for the most recent windowSize events, the number of
// occurrences of each item id.
func (s *Store) WindowCounts(windowSize int) (map[string]int64, error) {
	rows, err := s.db.Query(`
		SELECT item_id, COUNT(*) FROM (
			SELECT item_id FROM launch_history ORDER BY seq DESC LIMIT ?
		)
		GROUP BY item_id
	`, windowSize)
	if err != nil {
		return nil, wrapErr("window counts", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var id string
		var n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, wrapErr("window counts", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("window counts", err)
	}
	return counts, nil
}

// purgeHistory removes every occurrence of id from the launch history within
// an existing transaction.
func purgeHistory(tx *sql.Tx, id string) error {
	_, err := tx.Exec(`DELETE FROM launch_history WHERE item_id = ?`, id)
	return err
}

// Overlay operations

// Deprioritize adds id to the deprioritized set and purges its usage
// history, so un-deprioritizing later starts the item at a zero count.
func (s *Store) Deprioritize(id string) error {
	return s.insertAndPurge("deprioritize", "deprioritized_items", id)
}

// Undeprioritize removes id from the deprioritized set.
func (s *Store) Undeprioritize(id string) error {
	return s.removeFrom("undeprioritize", "deprioritized_items", id)
}

// DeprioritizedItems returns the set of deprioritized item ids.
func (s *Store) DeprioritizedItems() (map[string]struct{}, error) {
	return s.idSet("deprioritized items", "deprioritized_items")
}

// Delete hides id (shortcut items) and purges its usage history.
func (s *Store) Delete(id string) error {
	return s.insertAndPurge("delete item", "deleted_items", id)
}

// Undelete removes id from the deleted set.
func (s *Store) Undelete(id string) error {
	return s.removeFrom("undelete item", "deleted_items", id)
}

// DeletedItems returns the set of deleted item ids.
func (s *Store) DeletedItems() (map[string]struct{}, error) {
	return s.idSet("deleted items", "deleted_items")
}

// IgnoreNotifications adds id to the ignored-notifications set. Pure set
// toggle, no counter interaction.
func (s *Store) IgnoreNotifications(id string) error {
	return s.insertInto("ignore notifications", "ignored_notifications_items", id)
}

// UnignoreNotifications removes id from the ignored-notifications set.
func (s *Store) UnignoreNotifications(id string) error {
	return s.removeFrom("unignore notifications", "ignored_notifications_items", id)
}

// IgnoredNotificationsItems returns the set of ids whose notifications are
// ignored.
func (s *Store) IgnoredNotificationsItems() (map[string]struct{}, error) {
	return s.idSet("ignored notifications items", "ignored_notifications_items")
}

// Rename sets a custom label for id.
func (s *Store) Rename(id, label string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO renamed_items (item_id, label) VALUES (?, ?)`, id, label)
	if err != nil {
		return wrapErr("rename item", err)
	}
	s.changed.Raise()
	return nil
}

// Unrename removes the custom label for id.
func (s *Store) Unrename(id string) error {
	return s.removeFrom("unrename item", "renamed_items", id)
}

// RenamedItems returns the id → custom label map.
func (s *Store) RenamedItems() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT item_id, label FROM renamed_items`)
	if err != nil {
		return nil, wrapErr("renamed items", err)
	}
	defer rows.Close()

	renamed := make(map[string]string)
	for rows.Next() {
		var id, label string
		if err := rows.Scan(&id, &label); err != nil {
			return nil, wrapErr("renamed items", err)
		}
		renamed[id] = label
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("renamed items", err)
	}
	return renamed, nil
}

// Stats returns usage statistics for one item id.
func (s *Store) Stats(id string) (*ItemStats, error) {
	long, err := s.WindowCounts(LongTermWindowSize)
	if err != nil {
		return nil, err
	}
	short, err := s.WindowCounts(ShortTermWindowSize)
	if err != nil {
		return nil, err
	}
	deprioritized, err := s.DeprioritizedItems()
	if err != nil {
		return nil, err
	}

	_, isDeprioritized := deprioritized[id]
	return &ItemStats{
		ID:             id,
		LongTermCount:  long[id],
		ShortTermCount: short[id],
		Deprioritized:  isDeprioritized,
	}, nil
}

// Table helpers. The overlay tables all share the single item_id column
// shape; the mutators differ only in whether they purge history.

func (s *Store) insertInto(op, table, id string) error {
	_, err := s.db.Exec(fmt.Sprintf(`INSERT OR IGNORE INTO %s (item_id) VALUES (?)`, table), id)
	if err != nil {
		return wrapErr(op, err)
	}
	s.changed.Raise()
	return nil
}

func (s *Store) insertAndPurge(op, table, id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return wrapErr(op, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf(`INSERT OR IGNORE INTO %s (item_id) VALUES (?)`, table), id); err != nil {
		return wrapErr(op, err)
	}
	if err := purgeHistory(tx, id); err != nil {
		return wrapErr(op, err)
	}
	if err := tx.Commit(); err != nil {
		return wrapErr(op, err)
	}
	s.changed.Raise()
	return nil
}

func (s *Store) removeFrom(op, table, id string) error {
	_, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE item_id = ?`, table), id)
	if err != nil {
		return wrapErr(op, err)
	}
	s.changed.Raise()
	return nil
}

func (s *Store) idSet(op, table string) (map[string]struct{}, error) {
	rows, err := s.db.Query(fmt.Sprintf(`SELECT item_id FROM %s`, table))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, wrapErr(op, err)
		}
		set[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return set, nil
}
