// Package notion provides a minimal client for the Notion API, scoped
// to page creation inside a database. Authentication uses an
// integration token sent as a bearer header alongside the pinned
// Notion-Version header.
package notion
