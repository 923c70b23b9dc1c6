package messages

var id = map[string]string{
	"app.title":          "SecureBank AI",
	"app.subtitle":       "Prediksi Langganan Deposito Berjangka",
	"nav.predict":        "🔮 Prediksi AI",
	"nav.dashboard":      "📊 Dashboard Analytics",
	"nav.insights":       "📈 Data Insights",
	"nav.modelinfo":      "ℹ️ Model Info",
	"common.na":          "N/A",
	"common.error":       "Terjadi Kesalahan",
	"common.placeholder": "Nilai sementara, belum tersedia dari backend",

	DashboardTargetFailed: "Gagal mengambil distribusi target",
	DashboardJobFailed:    "Gagal mengambil tingkat keberhasilan pekerjaan",
	DashboardGeneric:      "Terjadi kesalahan saat memuat data dashboard.",
	InsightsAgeFailed:     "Gagal mengambil distribusi usia.",
	InsightsSampleFailed:  "Gagal mengambil data sampel saldo/durasi.",
	InsightsGeneric:       "Terjadi kesalahan saat memuat data insights.",
	ModelInfoFailed:       "Gagal mengambil informasi model.",
	ModelInfoGeneric:      "Terjadi kesalahan saat memuat informasi model.",
	PredictHTTPStatus:     "Terjadi kesalahan HTTP! Status: %d",
	PredictGeneric:        "Terjadi kesalahan tidak dikenal.",
	PredictRateLimit:      "Terlalu banyak permintaan. Coba lagi dalam %d detik.",
	PredictInvalid:        "Input tidak valid.",

	"predict.form.title":         "📝 Input Data Nasabah",
	"predict.form.submit":        "🚀 Analisis Potensi Nasabah",
	"predict.loading":            "AI Sedang Menganalisis...",
	"predict.result.title":       "Hasil Prediksi:",
	"predict.result.subscribe":   "Akan Berlangganan Deposito Berjangka:",
	"predict.result.yes":         "YA",
	"predict.result.no":          "TIDAK",
	"predict.result.probability": "Probabilitas 'Ya':",
	"predict.chart.yes":          "Probabilitas YA",
	"predict.chart.no":           "Probabilitas TIDAK",

	"predict.rec.yes.title":         "🎯 Nasabah Prioritas Tinggi",
	"predict.rec.yes.1":             "🔥 Prioritas Tinggi: Masukkan ke daftar prioritas utama",
	"predict.rec.yes.2":             "📞 Tindak Lanjut Cepat: Hubungi dalam 24-48 jam",
	"predict.rec.yes.3":             "💎 Penawaran Premium: Tawarkan suku bunga khusus atau manfaat eksklusif",
	"predict.rec.yes.4":             "📅 Jadwalkan Pertemuan: Atur pertemuan personal dengan manajer hubungan",
	"predict.rec.yes.outlook.title": "📈 Proyeksi Hasil",
	"predict.rec.yes.outlook.1":     "💰 Potensi Pendapatan: Tinggi",
	"predict.rec.yes.outlook.2":     "⚡ Kecepatan Konversi: Cepat",
	"predict.rec.yes.outlook.3":     "🤝 Nilai Hubungan: Jangka Panjang",
	"predict.rec.no.title":          "⚠️ Nasabah Membutuhkan Nurturing",
	"predict.rec.no.1":              "🎯 Membangun Hubungan: Fokus pada pengembangan hubungan jangka panjang",
	"predict.rec.no.2":              "📧 Pemasaran Email: Kirim informasi produk secara berkala",
	"predict.rec.no.3":              "🎁 Produk Alternatif: Tawarkan produk lain yang lebih sesuai",
	"predict.rec.no.4":              "📅 Tinjauan Masa Depan: Evaluasi kembali dalam 3-6 bulan",
	"predict.rec.no.alt.title":      "🔄 Pendekatan Alternatif",
	"predict.rec.no.alt.1":          "💳 Rekening Tabungan: Fokus pada produk tabungan",
	"predict.rec.no.alt.2":          "🏠 Kredit Pemilikan Rumah: Prioritaskan penawaran kredit properti",
	"predict.rec.no.alt.3":          "💎 Investasi: Pertimbangkan produk investasi",
	"predict.rec.no.alt.4":          "📱 Perbankan Digital: Tawarkan layanan digital",

	"field.age":       "Usia",
	"field.job":       "Pekerjaan",
	"field.marital":   "Status Pernikahan",
	"field.education": "Pendidikan",
	"field.balance":   "Saldo Rekening (€)",
	"field.default":   "Kredit Macet",
	"field.housing":   "Pinjaman Rumah",
	"field.loan":      "Pinjaman Pribadi",
	"field.contact":   "Metode Kontak",
	"field.month":     "Bulan",
	"field.duration":  "Durasi Panggilan (detik)",
	"field.campaign":  "Jumlah Kontak Kampanye Ini",
	"field.pdays":     "Hari Sejak Kontak Terakhir (-1 = tidak pernah)",
	"field.previous":  "Jumlah Kontak Kampanye Sebelumnya",
	"field.poutcome":  "Hasil Kampanye Sebelumnya",

	"option.job.admin.":          "Administrasi",
	"option.job.blue-collar":     "Pekerja Kerah Biru",
	"option.job.entrepreneur":    "Wiraswasta",
	"option.job.housemaid":       "Pembantu Rumah Tangga",
	"option.job.management":      "Manajemen",
	"option.job.retired":         "Pensiunan",
	"option.job.self-employed":   "Wirausaha",
	"option.job.services":        "Pelayanan",
	"option.job.student":         "Pelajar",
	"option.job.technician":      "Teknisi",
	"option.job.unemployed":      "Pengangguran",
	"option.job.unknown":         "Tidak Diketahui",
	"option.marital.married":     "Menikah",
	"option.marital.single":      "Lajang",
	"option.marital.divorced":    "Bercerai",
	"option.education.primary":   "Sekolah Dasar",
	"option.education.secondary": "Sekolah Menengah",
	"option.education.tertiary":  "Perguruan Tinggi",
	"option.education.unknown":   "Tidak Diketahui",
	"option.yesno.no":            "Tidak",
	"option.yesno.yes":           "Ya",
	"option.contact.cellular":    "Seluler",
	"option.contact.telephone":   "Telepon",
	"option.contact.unknown":     "Tidak Diketahui",
	"option.poutcome.failure":    "Gagal",
	"option.poutcome.other":      "Lainnya",
	"option.poutcome.success":    "Berhasil",
	"option.poutcome.unknown":    "Tidak Diketahui",
	"option.month.jan":           "Januari",
	"option.month.feb":           "Februari",
	"option.month.mar":           "Maret",
	"option.month.apr":           "April",
	"option.month.may":           "Mei",
	"option.month.jun":           "Juni",
	"option.month.jul":           "Juli",
	"option.month.aug":           "Agustus",
	"option.month.sep":           "September",
	"option.month.oct":           "Oktober",
	"option.month.nov":           "November",
	"option.month.dec":           "Desember",

	"dashboard.loading":         "Memuat data dashboard...",
	"dashboard.kpi.total":       "Total Nasabah",
	"dashboard.kpi.success":     "Tingkat Keberhasilan",
	"dashboard.kpi.duration":    "Rata-rata Durasi Panggilan",
	"dashboard.kpi.age":         "Rata-rata Usia Nasabah",
	"dashboard.chart.target":    "🎯 Distribusi Target Nasabah (Deposito)",
	"dashboard.chart.job":       "💼 Tingkat Keberhasilan Berdasarkan Kategori Pekerjaan",
	"dashboard.chart.job.axis":  "Tingkat Keberhasilan (%)",
	"dashboard.chart.job.label": "Pekerjaan",

	"insights.loading":         "Memuat data insights...",
	"insights.chart.age":       "👥 Distribusi Usia Berdasarkan Status Langganan",
	"insights.chart.age.axis":  "Jumlah Nasabah",
	"insights.chart.age.group": "Grup Usia",
	"insights.chart.scatter":   "💰 Saldo Rekening vs. Durasi Panggilan",
	"insights.chart.scatter.x": "Saldo Rekening (€)",
	"insights.chart.scatter.y": "Durasi Panggilan (detik)",
	"insights.series.yes":      "Berlangganan",
	"insights.series.no":       "Tidak Berlangganan",
	"insights.overview.title":  "📊 Gambaran Umum Dataset",
	"insights.overview.1":      "📈 Total Records: 45,211 nasabah",
	"insights.overview.2":      "🎯 Fitur: 16 input + 1 target",
	"insights.overview.3":      "✅ Kualitas Data: Tidak ada nilai hilang",
	"insights.overview.4":      "⚖️ Distribusi Kelas: 88.3% Tidak, 11.7% Ya",
	"insights.business.title":  "🎯 Wawasan Bisnis Utama",
	"insights.business.1":      "⏱️ Durasi Panggilan: Prediktor terkuat",
	"insights.business.2":      "📱 Metode Kontak: Seluler > Telepon",
	"insights.business.3":      "🏆 Keberhasilan Sebelumnya: Meningkatkan probabilitas",
	"insights.business.4":      "👥 Grup Usia: 30-60 tahun rentang optimal",

	"modelinfo.loading":          "Memuat informasi model...",
	"modelinfo.best.title":       "🤖 Performa Model",
	"modelinfo.best.name":        "Model Terbaik",
	"modelinfo.best.type":        "Tipe Model",
	"modelinfo.metric.accuracy":  "Akurasi Uji",
	"modelinfo.metric.precision": "Presisi",
	"modelinfo.metric.recall":    "Recall",
	"modelinfo.metric.f1":        "F1-Score",
	"modelinfo.metric.auc":       "AUC-ROC",
	"modelinfo.metric.cvfolds":   "Lipatan Validasi Silang",
	"modelinfo.metric.cvscore":   "Skor Validasi Silang",
	"modelinfo.stack.title":      "🛠️ Tumpukan Teknis",
	"modelinfo.stack.algorithm":  "Algoritma Model:",
	"modelinfo.stack.1":          "Gradient Boosting Classifier",
	"modelinfo.stack.2":          "100 estimator",
	"modelinfo.stack.3":          "Random state: 42",
	"modelinfo.stack.prep":       "Pra-pemrosesan Data:",
	"modelinfo.stack.4":          "Standard Scaling (numerik)",
	"modelinfo.stack.5":          "One-Hot Encoding (kategorikal)",
	"modelinfo.stack.6":          "SMOTE (penyeimbangan kelas)",
	"modelinfo.stack.7":          "Rekayasa Fitur (grup usia, kategori)",
	"modelinfo.impact.title":     "💼 Analisis Dampak Bisnis",
	"modelinfo.impact.perf":      "📈 Interpretasi Performa:",
	"modelinfo.impact.precision": "Presisi ~50.1%: Dari nasabah yang diprediksi akan berlangganan, sekitar 50.1% benar-benar akan berlangganan. Ini penting untuk mengurangi false positive dan biaya pemasaran yang tidak perlu.",
	"modelinfo.impact.recall":    "Recall ~71.6%: Dari nasabah yang sebenarnya akan berlangganan, sekitar 71.6% berhasil diidentifikasi oleh model. Ini memastikan kita tidak melewatkan banyak peluang bisnis.",
	"modelinfo.impact.roi":       "💰 Proyeksi ROI:",
	"modelinfo.impact.roi.1":     "Pengurangan Biaya: ~70% (dari $500K ke $150K)",
	"modelinfo.impact.roi.2":     "Peningkatan Konversi: +67% (target 20%+)",
	"modelinfo.impact.roi.3":     "Peningkatan Efisiensi: 3x akurasi penargetan",
	"modelinfo.impact.roi.4":     "Potensi Penghematan Tahunan: > $350,000",
	"modelinfo.method.title":     "📋 Metodologi CRISP-DM",
	"modelinfo.method.1":         "1. Pemahaman Bisnis: Analisis kebutuhan & tujuan bisnis.",
	"modelinfo.method.2":         "2. Pemahaman Data: EDA & analisis 45,211 catatan.",
	"modelinfo.method.3":         "3. Persiapan Data: Rekayasa fitur & pra-pemrosesan.",
	"modelinfo.method.4":         "4. Pemodelan: Pelatihan & evaluasi berbagai algoritma.",
	"modelinfo.method.5":         "5. Evaluasi: Penilaian performa & validasi.",
	"modelinfo.method.6":         "6. Implementasi: Aplikasi web & API prediksi.",
	"modelinfo.method.done":      "✅ Selesai",
	"modelinfo.method.ongoing":   "✅ Sedang Berlangsung",
}
