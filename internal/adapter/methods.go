package adapter

// Remote methods consumed from CoreAPI.
const (
	MethodAuthenticate   = "iam.auth.jwt.authenticate"
	MethodUsersSearch    = "iam.users.search"
	MethodClientsGet     = "clients.get"
	MethodClientsSearch  = "clients.search"
	MethodAccountsGet    = "clients.accounts.get"
	MethodAccountsSearch = "clients.accounts.search"
	MethodXDRsQuery      = "reports.xdrs_list.query"
)
