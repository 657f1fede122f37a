package catalog

var base = []Fish{
	{Name: "Tambaqui", Price: 25},
	{Name: "Pirarucu", Price: 40},
	{Name: "Filhote", Price: 35},
	{Name: "Dourada", Price: 28},
	{Name: "Pacu", Price: 22},
	{Name: "Mapará", Price: 18},
	{Name: "Jaraqui", Price: 15},
	{Name: "Curimatã", Price: 20},
	{Name: "Aracu", Price: 16},
	{Name: "Tucunaré", Price: 30},
	{Name: "Surubim", Price: 38},
	{Name: "Traíra", Price: 24},
	{Name: "Piau", Price: 19},
	{Name: "Cará", Price: 14},
	{Name: "Mandii", Price: 21},
	{Name: "Acari", Price: 17},
	{Name: "Arraia", Price: 45},
	{Name: "Bagre", Price: 23},
	{Name: "Jacundá", Price: 27},
	{Name: "Bicuda", Price: 32},
	{Name: "Tilápia", Price: 26},
	{Name: "Robalo", Price: 42},
	{Name: "Sardinha", Price: 12},
	{Name: "Atum", Price: 50},
	{Name: "Cavala", Price: 33},
	{Name: "Corvina", Price: 29},
	{Name: "Anchova", Price: 27},
	{Name: "Linguado", Price: 34},
	{Name: "Enguia", Price: 39},
	{Name: "Garoupa", Price: 48},
	{Name: "Merluza", Price: 26},
	{Name: "Polvo", Price: 55},
	{Name: "Cação", Price: 31},
	{Name: "Pintado", Price: 37},
	{Name: "Moreia", Price: 41},
	{Name: "Xaréu", Price: 36},
	{Name: "Tainha", Price: 28},
	{Name: "Paru", Price: 30},
	{Name: "Peixe-Boi", Price: 60},
	{Name: "Peixe-Espada", Price: 44},
	{Name: "Olhete", Price: 34},
	{Name: "Cavalo-Marinho", Price: 70},
	{Name: "Bonito", Price: 32},
	{Name: "Albacora", Price: 47},
	{Name: "Serra", Price: 29},
	{Name: "Badejo", Price: 43},
	{Name: "Pargo", Price: 38},
	{Name: "Peixe-Lua", Price: 65},
	{Name: "Carapicu", Price: 19},
	{Name: "Guarijuba", Price: 35},
	{Name: "Moréia-Verde", Price: 46},
	{Name: "Peixe-Galo", Price: 40},
	{Name: "Agulha", Price: 21},
	{Name: "Cangulo", Price: 28},
	{Name: "Beijupirá", Price: 52},
	{Name: "Peixe-Rei", Price: 31},
	{Name: "Baiacu", Price: 33},
	{Name: "Arraia-Jamanta", Price: 75},
	{Name: "Tamboril", Price: 42},
	{Name: "Caranha", Price: 49},
	{Name: "Mero", Price: 60},
	{Name: "Peixe-Palhaço", Price: 22},
	{Name: "Peixe-Anjo", Price: 28},
	{Name: "Peixe-Borboleta", Price: 26},
	{Name: "Peixe-Cachorro", Price: 30},
	{Name: "Peixe-Flauta", Price: 36},
	{Name: "Peixe-Cirurgião", Price: 38},
	{Name: "Peixe-Sapo", Price: 29},
	{Name: "Peixe-Leão", Price: 41},
	{Name: "Peixe-Mandarim", Price: 37},
	{Name: "Peixe-Arco-Íris", Price: 45},
	{Name: "Peixe-Tigre", Price: 50},
	{Name: "Peixe-Cobra", Price: 48},
	{Name: "Peixe-Gato", Price: 39},
	{Name: "Peixe-Dourado", Price: 27},
	{Name: "Peixe-Zebra", Price: 25},
	{Name: "Peixe-Porco", Price: 33},
	{Name: "Peixe-Pedra", Price: 46},
	{Name: "Peixe-Vela", Price: 55},
	{Name: "Peixe-Lixa", Price: 43},
	{Name: "Peixe-Cachimbo", Price: 31},
	{Name: "Peixe-Vermelho", Price: 29},
	{Name: "Peixe-Castanha", Price: 35},
	{Name: "Peixe-Capim", Price: 20},
	{Name: "Peixe-Piranha", Price: 24},
	{Name: "Peixe-Curupeté", Price: 18},
	{Name: "Peixe-Corró", Price: 22},
	{Name: "Peixe-Bagre-Elétrico", Price: 55},
	{Name: "Peixe-Trairão", Price: 40},
	{Name: "Peixe-Jundiá", Price: 27},
	{Name: "Peixe-Papagaio", Price: 44},
	{Name: "Peixe-Mojarra", Price: 32},
	{Name: "Peixe-Canjica", Price: 30},
	{Name: "Peixe-Camurim", Price: 36},
	{Name: "Peixe-Curvina", Price: 28},
	{Name: "Peixe-Ruivo", Price: 42},
	{Name: "Peixe-Coró", Price: 19},
	{Name: "Peixe-Jacu", Price: 21},
	{Name: "Peixe-Curuatá", Price: 23},
	{Name: "Peixe-Aruana", Price: 49},
}

var showcase = []Fish{
	{Name: "Tambaqui", Price: 25},
	{Name: "Pirarucu", Price: 40},
	{Name: "Filhote", Price: 35},
	{Name: "Dourada", Price: 28},
	{Name: "Pacu", Price: 22},
	{Name: "Mapará", Price: 18},
	{Name: "Jaraqui", Price: 15},
	{Name: "Tucunaré", Price: 30},
}

var bars = []float64{64, 25, 12, 22, 11, 90, 5, 77, 30, 42}
