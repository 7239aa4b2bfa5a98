package session

const MenuText = "\n=== 📡 LoRa BBS Gateway v0.1 ===\n" +
	"1) Buscar en DuckDuckGo\n" +
	"2) Buscar en Wikipedia\n" +
	"3) Ver clima actual\n" +
	"4) Noticias recientes (Google News)\n" +
	"5) Consultar LLM local\n" +
	"6) Chat/Foro\n" +
	"7) Tablón de anuncios\n" +
	"8) Jugar Trivia\n" +
	"9) Calendario\n" +
	"10) Tasas de Cambio\n" +
	"0) Créditos\n" +
	"q) Desconectar\n" +
	"> "

const DefaultCredits = "Hecho por Slam (2025)\nGithub.com: https://github.com/aayes89\n"
