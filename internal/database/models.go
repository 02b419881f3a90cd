package database

// Customer represents one delivery intake record. delivery_date holds the
// canonical "YYYY-MM-DD HH:MM" string rather than a native timestamp so
// the exact normalized form survives storage round-trips. Records are
// immutable once stored; there is no update path, only deletion.
type Customer struct {
	ID           int64  `db:"id"            json:"id"`
	Name         string `db:"name"          json:"name"`
	Phone        string `db:"phone"         json:"phone"`
	Address      string `db:"address"       json:"address"`
	DeliveryDate string `db:"delivery_date" json:"delivery_date"`
}
