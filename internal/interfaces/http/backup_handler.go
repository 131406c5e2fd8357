package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comanda-eventos/internal/application/backup"
	"github.com/jhoicas/comanda-eventos/internal/application/dto"
)

const maxBackupSize = 20 << 20

// BackupHandler exportar, previsualizar y restaurar respaldos.
type BackupHandler struct {
	svc *backup.Service
}

// NewBackupHandler construye el handler.
func NewBackupHandler(svc *backup.Service) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// Export godoc
// @Summary      Descargar respaldo completo (JSON)
// @Tags         backup
// @Produce      json
// @Success      200  {object}  backup.Document
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	doc, fileName, err := h.svc.Export(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	body, err := backup.Encode(doc)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Send(body)
}

// Preview godoc
// @Summary      Validar un respaldo y ver qué se restauraría
// @Tags         backup
// @Accept       json,mpfd
// @Produce      json
// @Param        file  formData  file  false  "Archivo de respaldo (o el JSON como cuerpo)"
// @Success      200   {object}  dto.BackupPreviewDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/backup/preview [post]
func (h *BackupHandler) Preview(c *fiber.Ctx) error {
	raw, fileName, err := readBackup(c)
	if err != nil {
		return badBody(c)
	}
	preview, _, err := h.svc.Preview(raw, fileName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(preview)
}

// Restore godoc
// @Summary      Restaurar respaldo (reemplaza todo)
// @Tags         backup
// @Accept       json,mpfd
// @Produce      json
// @Param        file     formData  file  false  "Archivo de respaldo (o el JSON como cuerpo)"
// @Param        confirm  query     bool  true   "Confirmación"
// @Success      200  {object}  dto.RestoreResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/backup/restore [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	raw, fileName, err := readBackup(c)
	if err != nil {
		return badBody(c)
	}
	preview, err := h.svc.Restore(c.UserContext(), raw, fileName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.RestoreResponse{Message: "Base de datos restaurada con éxito", Preview: *preview})
}

// readBackup acepta multipart (campo "file") o el JSON directo en el cuerpo.
func readBackup(c *fiber.Ctx) ([]byte, string, error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		raw, err := io.ReadAll(io.LimitReader(f, maxBackupSize))
		return raw, fh.Filename, err
	}
	body := c.Body()
	raw := make([]byte, len(body))
	copy(raw, body)
	return raw, c.Query("file_name"), nil
}
