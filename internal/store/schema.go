package store

const schema = `
CREATE TABLE IF NOT EXISTS launch_history (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS deprioritized_items (
    item_id TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS deleted_items (
    item_id TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS ignored_notifications_items (
    item_id TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS renamed_items (
    item_id TEXT PRIMARY KEY,
    label TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_item ON launch_history(item_id);
`
