package user

type MenuItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var (
	commonMenu = []MenuItem{
		{Name: "ℹ️ Informasi Akun Pribadi", URL: "/account"},
		{Name: "🚪 Keluar", URL: "/logout"},
	}

	roleMenus = map[string][]MenuItem{
		RoleAdmin: {
			{Name: "📋 Daftar Matkul & Dosen", URL: "/mahasiswa"},
			{Name: "📅 Deadline Tugas", URL: "/deadline"},
			{Name: "👥 Kelola Pengguna", URL: "/users"},
		},
		RoleLecturer: {
			{Name: "📘 Daftar Matkul & Dosen", URL: "/matkul"},
			{Name: "📅 Deadline Tugas", URL: "/deadline"},
			{Name: "📚 Jadwal Mengajar", URL: "/jadwal_mengajar"},
		},
		RoleStudent: {
			{Name: "📚 Daftar Matkul", URL: "/matkul"},
			{Name: "📅 Deadline Tugas", URL: "/deadline"},
			{Name: "🗓️ Jadwal Kelas", URL: "/jadwal"},
		},
	}
)

// Menu returns the role-specific entries followed by the entries every user gets.
// Unknown roles only get the common entries.
func Menu(role string) []MenuItem {
	prefix := roleMenus[role]
	menu := make([]MenuItem, 0, len(prefix)+len(commonMenu))
	menu = append(menu, prefix...)
	return append(menu, commonMenu...)
}
