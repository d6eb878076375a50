package quiz

// Question is one multiple-choice question. Options always holds four entries.
type Question struct {
	ID            int
	Text          string
	Options       [4]string
	CorrectAnswer int
	Explanation   string
}

var questions = []Question{
	{
		ID:   1,
		Text: "Apa tujuan utama dari enkripsi file di cloud storage?",
		Options: [4]string{
			"Agar file menjadi lebih kecil ukurannya",
			"Agar file tidak bisa dibaca oleh orang yang tidak berhak",
			"Agar download file menjadi lebih cepat",
			"Agar nama file berubah menjadi unik",
		},
		CorrectAnswer: 1,
		Explanation:   "Benar! Enkripsi mengacak data menjadi kode rahasia sehingga hanya pemilik kunci yang bisa membacanya.",
	},
	{
		ID:   2,
		Text: "Fitur keamanan apa yang sebaiknya diaktifkan selain password?",
		Options: [4]string{
			"Auto-login",
			"Simpan password di catatan HP",
			"Two-Factor Authentication (2FA)",
			"Share password ke teman",
		},
		CorrectAnswer: 2,
		Explanation:   "Tepat! 2FA memberikan lapisan keamanan kedua, jadi meskipun passwordmu ketahuan, akun tetap aman.",
	},
	{
		ID:   3,
		Text: "Di mana proses enkripsi terjadi pada aplikasi 'Cloud Safe' ini?",
		Options: [4]string{
			"Di Server Pusat",
			"Di Handphone Orang Lain",
			"Di Browser/Perangkat Anda Sendiri (Client-side)",
			"Tidak terjadi enkripsi",
		},
		CorrectAnswer: 2,
		Explanation:   "Betul! Simulasi ini melakukan enkripsi langsung di browser Anda (Client-side), jadi file asli tidak pernah keluar dari perangkat.",
	},
	{
		ID:   4,
		Text: "Jika kamu login akun cloud di komputer umum (kampus/warnet), apa yang WAJIB dilakukan sebelum pulang?",
		Options: [4]string{
			"Mematikan monitor saja",
			"Menghapus history browser",
			"Logout (Keluar) dari akun dan menutup browser",
			"Membiarkannya agar besok tidak perlu login lagi",
		},
		CorrectAnswer: 2,
		Explanation:   "Sangat penting! Jika tidak logout, orang berikutnya yang memakai komputer itu bisa mengakses semua data pribadimu dengan mudah.",
	},
	{
		ID:   5,
		Text: "Siapa yang paling bertanggung jawab menjaga kerahasiaan password akun cloud kamu?",
		Options: [4]string{
			"Pemerintah",
			"Penyedia Layanan Internet (WiFi)",
			"Teman dekatmu",
			"Kamu sendiri",
		},
		CorrectAnswer: 3,
		Explanation:   "Benar! Keamanan dimulai dari diri sendiri. Sebagus apapun sistemnya, jika kamu memberikan passwordmu ke orang lain, datamu tetap terancam.",
	},
}

// Questions returns a copy of the fixed question set.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
