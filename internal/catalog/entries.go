package catalog

import "laudos/internal"

type seedExam struct {
	name string
	lat  bool
}

// defaultGroups is the built-in exam catalog, grouped by modality and body
// region. Declaration order is the display and search order.
var defaultGroups = []struct {
	modality string
	region   string
	exams    []seedExam
}{
	{internal.ModalityRX, "Tórax", []seedExam{
		{name: "RX Tórax (PA/Lateral)"},
		{name: "RX Tórax (PA)"},
		{name: "RX Costelas", lat: true},
		{name: "RX Esterno"},
	}},
	{internal.ModalityRX, "Crânio e Face", []seedExam{
		{name: "RX Crânio (AP/Lateral)"},
		{name: "RX Seios da Face"},
		{name: "RX Cavum"},
		{name: "RX Mandíbula"},
		{name: "RX Ossos da Face"},
	}},
	{internal.ModalityRX, "Coluna", []seedExam{
		{name: "RX Coluna Cervical"},
		{name: "RX Coluna Torácica"},
		{name: "RX Coluna Lombar"},
		{name: "RX Coluna Lombo-Sacra"},
		{name: "RX Sacro e Cóccix"},
		{name: "RX Escanometria de Membros Inferiores"},
	}},
	{internal.ModalityRX, "Membros Superiores", []seedExam{
		{name: "RX Ombro", lat: true},
		{name: "RX Clavícula", lat: true},
		{name: "RX Braço", lat: true},
		{name: "RX Cotovelo", lat: true},
		{name: "RX Antebraço", lat: true},
		{name: "RX Punho", lat: true},
		{name: "RX Mão", lat: true},
		{name: "RX Idade Óssea"},
	}},
	{internal.ModalityRX, "Membros Inferiores", []seedExam{
		{name: "RX Bacia"},
		{name: "RX Quadril", lat: true},
		{name: "RX Fêmur", lat: true},
		{name: "RX Joelho", lat: true},
		{name: "RX Perna", lat: true},
		{name: "RX Tornozelo", lat: true},
		{name: "RX Pé", lat: true},
		{name: "RX Calcâneo", lat: true},
	}},
	{internal.ModalityRX, "Abdome", []seedExam{
		{name: "RX Abdome Simples"},
		{name: "RX Abdome Agudo"},
	}},

	{internal.ModalityUS, "Abdome e Pelve", []seedExam{
		{name: "USG Abdome Total"},
		{name: "USG Abdome Superior"},
		{name: "USG Aparelho Urinário"},
		{name: "USG Pélvica (Via Abdominal)"},
		{name: "USG Pélvica Transvaginal"},
		{name: "USG Próstata (Via Abdominal)"},
	}},
	{internal.ModalityUS, "Obstétrica", []seedExam{
		{name: "USG Obstétrica"},
		{name: "USG Obstétrica com Doppler"},
		{name: "USG Morfológica"},
	}},
	{internal.ModalityUS, "Pequenas Partes", []seedExam{
		{name: "USG Tireoide"},
		{name: "USG Cervical"},
		{name: "USG Glândulas Salivares"},
		{name: "USG Mamas"},
		{name: "USG Axila", lat: true},
		{name: "USG Bolsa Escrotal"},
		{name: "USG Parede Abdominal"},
	}},
	{internal.ModalityUS, "Musculoesquelético", []seedExam{
		{name: "USG Ombro", lat: true},
		{name: "USG Cotovelo", lat: true},
		{name: "USG Punho", lat: true},
		{name: "USG Mão", lat: true},
		{name: "USG Quadril", lat: true},
		{name: "USG Joelho", lat: true},
		{name: "USG Tornozelo", lat: true},
		{name: "USG Pé", lat: true},
	}},
	{internal.ModalityUS, "Doppler", []seedExam{
		{name: "USG Doppler de Carótidas e Vertebrais"},
		{name: "USG Doppler Venoso de Membro Inferior", lat: true},
		{name: "USG Doppler Arterial de Membro Inferior", lat: true},
		{name: "USG Doppler de Aorta e Ilíacas"},
	}},

	{internal.ModalityTC, "Crânio e Face", []seedExam{
		{name: "TC Crânio"},
		{name: "TC Seios da Face"},
		{name: "TC Ouvidos (Mastoides)"},
		{name: "TC Órbitas"},
	}},
	{internal.ModalityTC, "Tórax", []seedExam{
		{name: "TC Tórax"},
		{name: "TC Tórax - Sem Contraste"},
	}},
	{internal.ModalityTC, "Abdome e Pelve", []seedExam{
		{name: "TC Abdome Total"},
		{name: "TC Abdome Superior"},
		{name: "TC Pelve"},
		{name: "Uro-TC"},
	}},
	{internal.ModalityTC, "Coluna", []seedExam{
		{name: "TC Coluna Cervical"},
		{name: "TC Coluna Torácica"},
		{name: "TC Coluna Lombar"},
	}},
	{internal.ModalityTC, "Musculoesquelético", []seedExam{
		{name: "TC Ombro", lat: true},
		{name: "TC Quadril", lat: true},
		{name: "TC Joelho", lat: true},
		{name: "TC Tornozelo", lat: true},
	}},

	{internal.ModalityRM, "Crânio", []seedExam{
		{name: "RM Encéfalo"},
		{name: "RM Sela Túrcica"},
		{name: "RM Órbitas"},
	}},
	{internal.ModalityRM, "Coluna", []seedExam{
		{name: "RM Coluna Cervical"},
		{name: "RM Coluna Torácica"},
		{name: "RM Coluna Lombar"},
	}},
	{internal.ModalityRM, "Abdome e Pelve", []seedExam{
		{name: "RM Abdome Superior"},
		{name: "RM Pelve"},
		{name: "Colangio-RM"},
	}},
	{internal.ModalityRM, "Musculoesquelético", []seedExam{
		{name: "RM Ombro", lat: true},
		{name: "RM Cotovelo", lat: true},
		{name: "RM Punho", lat: true},
		{name: "RM Quadril", lat: true},
		{name: "RM Joelho", lat: true},
		{name: "RM Tornozelo", lat: true},
		{name: "RM Pé", lat: true},
	}},

	{internal.ModalityMG, "Mamas", []seedExam{
		{name: "Mamografia Bilateral"},
		{name: "Mamografia Unilateral", lat: true},
	}},
}

// DefaultEntries flattens the built-in catalog tables.
func DefaultEntries() []internal.CatalogEntry {
	var out []internal.CatalogEntry
	for _, group := range defaultGroups {
		for _, exam := range group.exams {
			out = append(out, internal.CatalogEntry{
				Name:          exam.name,
				HasLaterality: exam.lat,
				RegionName:    group.region,
				Modality:      group.modality,
			})
		}
	}
	return out
}
