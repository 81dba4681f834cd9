package app

import (
	"fmt"
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"TerraVoxel/shared/util"
	"TerraVoxel/shared/voxel"
	"TerraVoxel/shared/world"
)

// skyColor é a cor de fundo da cena; igual à cor de névoa dos shaders para
// o terreno distante desaparecer sem costura.
var skyColor = rl.NewColor(135, 181, 235, 255)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(skyColor)

	if a.State == StateLoading {
		a.drawLoadingScreen()
	} else {
		a.drawScene()
		a.drawHUD()

		if a.State == StatePaused {
			a.drawPauseMenu()
		}
	}

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.cam.RLCamera)

	a.renderer.Draw(a.cam.RLCamera)

	// Contorno do voxel sob a mira
	if a.hasTarget {
		a.renderer.DrawSelection(a.target)
	}

	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta: tinta de submersão, mira,
// hotbar e (com F3) o painel de debug.
func (a *App) drawHUD() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	// Tinta azulada quando os olhos estão dentro da água
	eye := a.player.Eye()
	if a.world.GetBlock(int(math.Floor(eye[0])), int(math.Floor(eye[1])), int(math.Floor(eye[2]))) == voxel.Water {
		rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(63, 118, 228, 90))
	}

	// Mira em cruz no centro da tela
	cx, cy := screenWidth/2, screenHeight/2
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.White)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.White)

	a.drawHotbar(screenWidth, screenHeight)

	if a.Config.ShowDebugInfo {
		a.drawDebugPanel(screenWidth)
	}
}

// drawHotbar desenha a paleta de blocos colocáveis no rodapé.
func (a *App) drawHotbar(screenWidth, screenHeight int32) {
	const slot = int32(44)
	const pad = int32(6)

	n := int32(len(voxel.Placeable))
	total := n*slot + (n-1)*pad
	x := (screenWidth - total) / 2
	y := screenHeight - slot - 16

	for i, b := range voxel.Placeable {
		sx := x + int32(i)*(slot+pad)
		rl.DrawRectangle(sx, y, slot, slot, rl.NewColor(0, 0, 0, 140))

		c := voxel.ColorOf(b)
		rl.DrawRectangle(sx+8, y+8, slot-16, slot-16, rl.NewColor(c.R, c.G, c.B, 255))

		border := rl.NewColor(70, 70, 70, 255)
		if b == a.player.Selected {
			border = rl.White
		}
		rl.DrawRectangleLines(sx, y, slot, slot, border)
		rl.DrawText(fmt.Sprintf("%d", i+1), sx+4, y+3, 10, rl.LightGray)
	}

	// Nome do bloco selecionado acima da hotbar
	name := a.player.Selected.Name()
	nameWidth := rl.MeasureText(name, 16)
	rl.DrawText(name, (screenWidth-nameWidth)/2, y-24, 16, rl.White)
}

// drawDebugPanel desenha o painel de diagnóstico no canto superior direito.
func (a *App) drawDebugPanel(screenWidth int32) {
	width := int32(330)
	height := int32(220)
	x := screenWidth - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	rl.DrawText(fmt.Sprintf("Seed: %d", a.Config.Seed), x+200, y+12, 16, rl.Gold)

	rl.DrawLine(x+10, y+38, x+width-10, y+38, rl.NewColor(100, 100, 100, 100))

	// Jogador
	rl.DrawText("JOGADOR", x+10, y+46, 12, rl.Gray)

	pos := a.player.Pos
	rl.DrawText(fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)", pos[0], pos[1], pos[2]), x+10, y+60, 16, rl.White)

	center := world.CoordAt(int(math.Floor(pos[0])), int(math.Floor(pos[2])))
	grounded := "no ar"
	if a.player.Grounded {
		grounded = "no chão"
	}
	rl.DrawText(fmt.Sprintf("Chunk: (%d, %d) [%s]", center.X, center.Z, grounded), x+10, y+80, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Yaw: %.0f  Pitch: %.0f", a.player.Yaw*180/math.Pi, a.player.Pitch*180/math.Pi), x+10, y+98, 14, rl.LightGray)

	rl.DrawLine(x+10, y+118, x+width-10, y+118, rl.NewColor(100, 100, 100, 100))

	// Mundo
	rl.DrawText("MUNDO", x+10, y+126, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Chunks: %d na RAM, %d na GPU", a.world.Count(), a.renderer.ModelCount()), x+10, y+140, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Geração pendente: %d", a.streamer.Pending()), x+10, y+158, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Quebrados: %d  Colocados: %d", a.blocksBroken, a.blocksPlaced), x+10, y+176, 14, rl.LightGray)

	// Voxel sob a mira
	if a.hasTarget {
		b := a.world.GetBlock(a.target.X, a.target.Y, a.target.Z)
		rl.DrawText(fmt.Sprintf("Mira: %s em (%d, %d, %d)", b.Name(), a.target.X, a.target.Y, a.target.Z),
			x+10, y+196, 14, rl.SkyBlue)
	} else {
		rl.DrawText("Mira: nada ao alcance", x+10, y+196, 14, rl.Gray)
	}
}

// drawPauseMenu desenha o menu de escape centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	// 1. Fundo escurecido (Dimmer)
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	// 2. Painel Central
	panelWidth := int32(400)
	panelHeight := int32(300)
	panelX := (screenWidth - panelWidth) / 2
	panelY := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.NewColor(30, 30, 35, 255))
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.White)

	// Título do Menu
	menuTitle := "MENU DE PAUSA"
	titleWidth := rl.MeasureText(menuTitle, 24)
	rl.DrawText(menuTitle, panelX+(panelWidth-titleWidth)/2, panelY+30, 24, rl.Gold)

	// 3. Botões
	buttonX := panelX + 50
	buttonWidth := panelWidth - 100
	buttonHeight := int32(40)

	// Botão: RETOMAR
	if a.drawButton(buttonX, panelY+90, buttonWidth, buttonHeight, "RETOMAR (ESC)", rl.Green) {
		a.State = StatePlaying
		rl.DisableCursor()
	}

	// Botão: ATALHOS (informativo)
	if a.drawButton(buttonX, panelY+145, buttonWidth, buttonHeight, "F3: DEBUG | F11: TELA CHEIA", rl.Gray) {
		// Apenas informativo por enquanto
	}

	// Botão: SAIR
	if a.drawButton(buttonX, panelY+200, buttonWidth, buttonHeight, "SAIR DO JOGO", rl.Red) {
		log.Println("[App] Encerrando aplicação pelo menu.")
		a.quit = true
	}
}

// drawButton desenha um botão genérico com hover e retorna true se clicado.
func (a *App) drawButton(x, y, w, h int32, text string, color rl.Color) bool {
	mousePos := rl.GetMousePosition()
	isHover := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	drawColor := color
	if isHover {
		drawColor.R += 30
		drawColor.G += 30
		drawColor.B += 30
	}

	rl.DrawRectangle(x, y, w, h, rl.NewColor(50, 50, 50, 255))
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 18)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-18)/2, 18, rl.White)

	return isHover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// drawLoadingScreen desenha o splash da carga inicial do terreno.
func (a *App) drawLoadingScreen() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	// Fundo
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(20, 20, 25, 255))

	// Título
	title := "TERRAVOXEL"
	titleWidth := rl.MeasureText(title, 40)
	rl.DrawText(title, (screenWidth-titleWidth)/2, screenHeight/2-60, 40, rl.Gold)

	progress := float32(0)
	if a.LoadingTotal > 0 {
		progress = float32(a.world.Count()) / float32(a.LoadingTotal)
		if progress > 1 {
			progress = 1
		}
	}
	// A barra persegue o progresso real para não saltar aos trancos.
	a.loadingShown = util.Lerp(a.loadingShown, progress, 0.15)

	// Barra de progresso
	barWidth := int32(400)
	barHeight := int32(30)
	barX := (screenWidth - barWidth) / 2
	barY := screenHeight/2 + 20

	rl.DrawRectangle(barX, barY, barWidth, barHeight, rl.DarkGray)
	rl.DrawRectangle(barX, barY, int32(float32(barWidth)*a.loadingShown), barHeight, rl.Orange)
	rl.DrawRectangleLines(barX, barY, barWidth, barHeight, rl.White)

	// Status
	status := fmt.Sprintf("Gerando terreno: %d/%d chunks (seed %d)", a.world.Count(), a.LoadingTotal, a.Config.Seed)
	statusWidth := rl.MeasureText(status, 18)
	rl.DrawText(status, (screenWidth-statusWidth)/2, barY+45, 18, rl.LightGray)

	// Rodapé
	tip := "Pressione ESPAÇO para entrar imediatamente (o terreno restante chega em jogo)."
	tipWidth := rl.MeasureText(tip, 16)
	rl.DrawText(tip, (screenWidth-tipWidth)/2, screenHeight-50, 16, rl.Gray)
}
