package util

// FloorDiv divide a por b arredondando sempre para baixo (divisão de piso).
// A divisão inteira do Go trunca em direção a zero, o que quebra o mapeamento
// de coordenadas de mundo negativas para chunks; aqui FloorDiv(-1, 16) == -1.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod retorna o resto não-negativo de a mod b, par do FloorDiv:
// para todo a vale FloorDiv(a,b)*b + FloorMod(a,b) == a, com 0 <= resto < b.
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
