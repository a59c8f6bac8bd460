package constants

const (
	ROLE_ADMIN = "admin"
	ROLE_USER  = "user"

	STATUS_PENDING   = "Pending"
	STATUS_DISETUJUI = "Disetujui"
	STATUS_DITOLAK   = "Ditolak"

	TIKET_TERSEDIA = "Tersedia"
	TIKET_SELESAI  = "Selesai"

	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_INPUT              = "Invalid input"
	DATA_INPUT_IS_NOT_NUMBER = "Params must be a number"
	MISSING_LOGIN_INPUT      = "Phone number and password are required"
	INVALID_PASSWORD         = "Invalid password"
	USER_NOT_FOUND           = "User not found"
	PHONE_ALREADY_REGISTERED = "Phone number already registered"
	TIKET_NOT_FOUND          = "Ticket not found"
	PAKET_NOT_FOUND          = "Package not found"
	KATEGORI_NOT_FOUND       = "Category not found"
	TIKET_AJUKAN_NOT_FOUND   = "Submitted ticket not found"
	PAKET_AJUKAN_NOT_FOUND   = "Submitted package not found"
	INVALID_STATUS_PENGAJUAN = "Invalid status_pengajuan"
	NOT_ADMIN                = "Access denied: You must be a Admin to perform this action."
	MISSING_TOKEN            = "Access token is missing. Please log in."
	INVALID_TOKEN            = "Invalid or expired token. Please log in again."
)

// AllowedCategories adalah nilai ENUM kolom kategori di tabel tiket dan tiket_diajukan
var AllowedCategories = []string{"seminar", "konser", "sport", "pameran"}

func IsAllowedKategori(kategori string) bool {
	for _, k := range AllowedCategories {
		if k == kategori {
			return true
		}
	}
	return false
}

// StatusPengajuanValues: siklus status pengajuan tiket
var StatusPengajuanValues = []string{STATUS_PENDING, STATUS_DISETUJUI, STATUS_DITOLAK}

func IsValidStatusPengajuan(status string) bool {
	for _, s := range StatusPengajuanValues {
		if s == status {
			return true
		}
	}
	return false
}
