package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

func main() {
	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║      TerraVoxel Native Builder       ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	// 1. Configurar Ambiente
	setupEnvironment()

	exe := ""
	gameFlags := "-s -w"
	if runtime.GOOS == "windows" {
		exe = ".exe"
		gameFlags = "-s -w -H=windowsgui"
	}

	// 2. Compilar o Jogo (raylib e SQLite exigem CGO)
	if err := buildComponent("JOGO (CGO + raylib)", "jogo", "terravoxel"+exe, true, gameFlags); err != nil {
		fatal(err)
	}

	// 3. Compilar o Monitor
	if err := buildComponent("MONITOR (Pure Go)", "monitor", "tvmonitor"+exe, false, "-s -w"); err != nil {
		fatal(err)
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Println(ColorYellow + "Dica: execute 'terravoxel' para jogar e 'tvmonitor' para acompanhar a sessão." + ColorReset)

	waitEnter()
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0/2] Configurando ambiente de compilação..." + ColorReset)

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	} else {
		fmt.Println("  - Compilador C do sistema (raylib precisa dos headers de X11/GL)")
	}
}

func buildComponent(name, dir, output string, useCgo bool, ldflags string) error {
	fmt.Printf(ColorYellow+"\n[+] Compilando %s..."+ColorReset+"\n", name)

	cgoValue := "0"
	if useCgo {
		cgoValue = "1"
	}
	os.Setenv("CGO_ENABLED", cgoValue)

	args := []string{"build", "-ldflags", ldflags, "-o", output, "./" + dir}
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %v", name, err)
	}

	fmt.Printf(ColorGreen+"  - %s compilado com sucesso -> %s"+ColorReset+"\n", name, output)
	return nil
}

// waitEnter segura o console aberto no Windows, onde a build costuma rodar
// por duplo clique.
func waitEnter() {
	if runtime.GOOS != "windows" {
		return
	}
	fmt.Println("\nPressione Enter para sair...")
	fmt.Scanln()
}

func fatal(err error) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	waitEnter()
	os.Exit(1)
}
