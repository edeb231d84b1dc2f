// Package schedule serves the fixed timetables shown to lecturers and students.
package schedule

type (
	// Course is a row of the course list (/matkul).
	Course struct {
		Hari   string
		Matkul string
		Jenis  string
		Waktu  string
		Ruang  string
		Dosen  string
	}

	// Class is a row of a student's class schedule (/jadwal).
	Class struct {
		Hari   string
		Matkul string
		Waktu  string
		Ruang  string
		Dosen  string
	}

	// Teaching is a row of a lecturer's teaching schedule (/jadwal_mengajar).
	Teaching struct {
		Hari   string
		Jam    string
		Matkul string
		Kelas  string
		Ruang  string
	}
)

func Courses() []Course {
	return []Course{
		{Hari: "Rabu", Matkul: "MSC 3401 - F", Jenis: "Lecture", Waktu: "08:00 - 11:00", Ruang: "D1205", Dosen: "Dr. Andi"},
		{Hari: "Kamis", Matkul: "IF 451 - F", Jenis: "Lecture", Waktu: "08:00 - 10:00", Ruang: "B0313", Dosen: "Bapak Budi"},
		{Hari: "Kamis", Matkul: "IF 451 - FL", Jenis: "Laboratory", Waktu: "10:00 - 12:00", Ruang: "B0506", Dosen: "Bapak Budi"},
		{Hari: "Rabu", Matkul: "IF 350 - F", Jenis: "Lecture", Waktu: "13:00 - 16:00", Ruang: "C0908", Dosen: "Ibu Sari"},
		{Hari: "Kamis", Matkul: "IF 440 - F", Jenis: "Lecture", Waktu: "13:00 - 16:00", Ruang: "C0802", Dosen: "Dr. Rizal"},
		{Hari: "Jumat", Matkul: "CE 319 - F", Jenis: "Lecture", Waktu: "13:00 - 16:00", Ruang: "C0812", Dosen: "Dr. Putra"},
		{Hari: "Sabtu", Matkul: "IF 351 - F", Jenis: "Lecture", Waktu: "08:00 - 10:00", Ruang: "C0301", Dosen: "Bapak Hendra"},
		{Hari: "Sabtu", Matkul: "IF 351 - FL", Jenis: "Laboratory", Waktu: "10:00 - 12:00", Ruang: "B0504", Dosen: "Bapak Hendra"},
		{Hari: "Sabtu", Matkul: "IF 333 - F", Jenis: "Lecture", Waktu: "13:00 - 16:00", Ruang: "B0311", Dosen: "Ibu Lina"},
		{Hari: "Selasa", Matkul: "UM 142 - K", Jenis: "Lecture", Waktu: "15:00 - 17:00", Ruang: "D0901", Dosen: "Ibu Maya"},
	}
}

func Classes() []Class {
	return []Class{
		{Hari: "Senin", Matkul: "Algoritma", Waktu: "08:00 - 10:00", Ruang: "Lab 1", Dosen: "Dr. Andi"},
		{Hari: "Rabu", Matkul: "Struktur Data", Waktu: "13:00 - 15:00", Ruang: "C0908", Dosen: "Bapak Budi"},
		{Hari: "Jumat", Matkul: "Basis Data", Waktu: "10:00 - 12:00", Ruang: "B0506", Dosen: "Ibu Sari"},
		{Hari: "Selasa", Matkul: "Pemrograman Web", Waktu: "09:00 - 11:00", Ruang: "R305", Dosen: "Dr. Rizal"},
		{Hari: "Kamis", Matkul: "Jaringan Komputer", Waktu: "14:00 - 16:00", Ruang: "Lab 2", Dosen: "Bapak Hendra"},
	}
}

func TeachingSchedule() []Teaching {
	return []Teaching{
		{Hari: "Senin", Jam: "08:00 - 10:00", Matkul: "Algoritma dan Pemrograman", Kelas: "IF-1", Ruang: "R101"},
		{Hari: "Rabu", Jam: "10:00 - 12:00", Matkul: "Struktur Data", Kelas: "IF-2", Ruang: "R202"},
		{Hari: "Kamis", Jam: "13:00 - 15:00", Matkul: "Basis Data", Kelas: "IF-3", Ruang: "Lab Komputer"},
		{Hari: "Jumat", Jam: "09:00 - 11:00", Matkul: "Pemrograman Web", Kelas: "IF-4", Ruang: "R305"},
	}
}
