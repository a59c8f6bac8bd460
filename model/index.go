package model

type TokenClaim struct {
	NoTelp    string `json:"no_telp"`
	NamaUser  string `json:"nama_user"`
	EmailUser string `json:"email_user"`
	Role      string `json:"role"`
}

type Pagination struct {
	Limit *int `query:"limit" json:"limit"`
	Page  *int `query:"page" json:"page"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}
