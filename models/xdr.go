package models

// DefaultXDRReturnFields is the projection used by reports.xdrs_list.query when
// the caller does not ask for specific fields.
var DefaultXDRReturnFields = []string{
	"src_party_id_ext",
	"dst_party_id_ext",
	"start_time",
	"stop_time",
	"volume",
	"subscriber_host",
	"subscriber_id",
}

// XDRQuery holds the parameters of reports.xdrs_list.query.
type XDRQuery struct {
	// ReturnFields lists the xDR attributes to return.
	ReturnFields []string `json:"return_fields"`

	// Filters is passed through to CoreAPI as-is, e.g.
	// {"origin": "orig", "billed_clients_id": 13, "date": [from, to]}.
	Filters map[string]any `json:"filters,omitempty"`

	// Limit caps the number of returned rows. Zero omits the parameter.
	Limit int `json:"limit,omitempty"`
}
