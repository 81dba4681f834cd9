// Package noise implementa ruído gradiente 2D determinístico com tabela de
// permutação semeada. Não há instância global: quem precisa de ruído constrói
// um Field com New e o carrega consigo, então dois geradores com seeds
// diferentes convivem no mesmo processo sem se contaminar.
package noise

import "math"

// Field é um campo de ruído gradiente. Mesma seed, mesma tabela, mesmo valor
// em qualquer plataforma e em qualquer execução: esse é o contrato que torna
// o mundo reproduzível a partir de um único inteiro.
type Field struct {
	perm [512]int
}

// New constrói o campo a partir de uma seed. O embaralhamento Fisher-Yates é
// alimentado por um LCG próprio em vez de math/rand, que não garante a mesma
// sequência entre versões do Go. Seeds degeneradas (zero, negativas) passam
// pelo mesmo caminho e produzem uma permutação completa válida.
func New(seed int64) *Field {
	f := &Field{}

	var base [256]int
	for i := range base {
		base[i] = i
	}

	s := seed
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int(uint64(s>>16) % uint64(i+1))
		base[i], base[j] = base[j], base[i]
	}

	// Tabela duplicada para indexar perm[perm[xi]+yi+1] sem wrap explícito.
	for i := 0; i < 256; i++ {
		f.perm[i] = base[i]
		f.perm[i+256] = base[i]
	}
	return f
}

// fade é a curva quíntica 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad devolve o produto escalar entre um gradiente pseudo-aleatório
// (escolhido pelo hash do canto) e o vetor de distância.
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Sample2D amostra o campo em (x, y). Resultado aproximadamente em [-1, 1].
func (f *Field) Sample2D(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := f.perm[f.perm[xi]+yi]
	ab := f.perm[f.perm[xi]+yi+1]
	ba := f.perm[f.perm[xi+1]+yi]
	bb := f.perm[f.perm[xi+1]+yi+1]

	x1 := lerp(u, grad(aa, xf, yf), grad(ba, xf-1, yf))
	x2 := lerp(u, grad(ab, xf, yf-1), grad(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// Octaves soma count camadas de Sample2D começando na frequência scale,
// dobrando a frequência e multiplicando a amplitude por persistence a cada
// camada. A soma é normalizada pela amplitude acumulada, então o resultado
// permanece em [-1, 1] independente de quantas camadas forem pedidas.
func (f *Field) Octaves(x, y float64, count int, persistence, scale float64) float64 {
	var total float64
	frequency := scale
	amplitude := 1.0
	maxAmplitude := 0.0

	for i := 0; i < count; i++ {
		total += f.Sample2D(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	if maxAmplitude == 0 {
		return 0
	}
	return total / maxAmplitude
}
