// Package documento renders the printable birth-certificate document for an
// approved solicitud. The output is a self-contained HTML page; turning it into
// a fixed-layout PDF is a manual print step on the user's side.
package documento

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"docutrack/models"
)

// Instrucciones is shown to the user after exporting a certificate.
const Instrucciones = `Certificado descargado como archivo HTML.

Para convertir a PDF:
1. Abre el archivo descargado en tu navegador
2. Presiona Ctrl+P (o Cmd+P en Mac)
3. Selecciona "Guardar como PDF" como destino
4. Ajusta los márgenes si es necesario
5. Haz clic en "Guardar"

El documento se verá perfectamente formateado como un certificado oficial.`

var mesesES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Filename returns the download name for a certificate number.
func Filename(numero string) string {
	return fmt.Sprintf("Certificado_Nacimiento_%s.html", numero)
}

// datosRender carries the derived display strings the template needs alongside
// the raw certificate.
type datosRender struct {
	Cert           models.Certificado
	NombreCompleto string
	FechaLarga     string
	Ubicacion      string
	NombrePadre    string
	NombreMadre    string
	SexoTexto      string
	Generado       string
}

// Render expands one certificate into the printable document. Empty optional
// fields are omitted entirely; a certificate with no parent data simply has no
// parent rows.
func Render(cert models.Certificado) (string, error) {
	d := cert.Datos
	ctx := datosRender{
		Cert:           cert,
		NombreCompleto: d.NombreCompleto(),
		FechaLarga:     fechaLarga(d.FechaNacimiento),
		Ubicacion:      joinNonEmpty(", ", d.CorregimientoNacimiento, d.DistritoNacimiento, d.ProvinciaNacimiento),
		NombrePadre:    joinNonEmpty(" ", d.NombrePadre, d.ApellidosPadre),
		NombreMadre:    joinNonEmpty(" ", d.NombreMadre, d.ApellidosMadre),
		SexoTexto:      sexoTexto(d.Sexo),
		Generado:       time.Now().Format("02/01/2006"),
	}

	var buf bytes.Buffer
	if err := certificadoTmpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("rendering certificado %s: %w", cert.Numero, err)
	}
	return buf.String(), nil
}

// fechaLarga formats an ISO date in the long es-PA form ("2 de enero de 2006").
// Absent or malformed dates fall back to the literal used on blank certificates.
func fechaLarga(fecha string) string {
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return "N/A"
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), mesesES[t.Month()-1], t.Year())
}

// sexoTexto spells out the form's sex code. Any non-empty value other than
// "M" reads as Femenino, matching the issued certificates; the form validator
// only lets M and F through anyway.
func sexoTexto(sexo string) string {
	switch sexo {
	case "":
		return ""
	case "M":
		return "Masculino"
	}
	return "Femenino"
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

var certificadoTmpl = template.Must(template.New("certificado").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Certificado de Nacimiento</title>
    <style>
        @page { size: A4; margin: 2cm; }
        body { font-family: Arial, sans-serif; line-height: 1.4; color: #000; max-width: 800px; margin: 0 auto; }
        .header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #000; padding-bottom: 20px; }
        .title { font-size: 24px; font-weight: bold; margin: 5px 0; }
        .subtitle { font-size: 20px; font-weight: bold; margin: 5px 0; }
        .document-type { font-size: 18px; font-weight: bold; margin: 10px 0; }
        .certificate-info { margin: 20px 0; padding: 15px; background-color: #f5f5f5; }
        .section { margin: 25px 0; }
        .section-title { font-size: 16px; font-weight: bold; margin-bottom: 15px; color: #333; border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        .field { margin: 8px 0; display: flex; }
        .field-label { font-weight: bold; min-width: 150px; margin-right: 10px; }
        .field-value { flex: 1; }
        .parent-info { margin-left: 20px; margin-top: 10px; }
        .footer { text-align: center; margin-top: 40px; padding-top: 20px; border-top: 1px solid #000; font-style: italic; }
        .generated-date { margin-top: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">REPÚBLICA DE PANAMÁ</div>
        <div class="subtitle">TRIBUNAL ELECTORAL</div>
        <div class="document-type">CERTIFICADO DE NACIMIENTO</div>
    </div>

    <div class="certificate-info">
        <div class="field"><span class="field-label">Número de Certificado:</span><span class="field-value">{{.Cert.Numero}}</span></div>
        <div class="field"><span class="field-label">Fecha de Expedición:</span><span class="field-value">{{.Cert.FechaExpedicion}}</span></div>
    </div>

    <div class="section">
        <div class="section-title">DATOS DE LA PERSONA</div>
        {{if .NombreCompleto}}<div class="field"><span class="field-label">Nombre completo:</span><span class="field-value">{{.NombreCompleto}}</span></div>{{end}}
        {{if .Cert.Datos.CedulaPersona}}<div class="field"><span class="field-label">Cédula de identidad:</span><span class="field-value">{{.Cert.Datos.CedulaPersona}}</span></div>{{end}}
        {{if .Cert.Datos.FechaNacimiento}}<div class="field"><span class="field-label">Fecha de nacimiento:</span><span class="field-value">{{.FechaLarga}}</span></div>{{end}}
        {{if .Cert.Datos.HoraNacimiento}}<div class="field"><span class="field-label">Hora de nacimiento:</span><span class="field-value">{{.Cert.Datos.HoraNacimiento}}</span></div>{{end}}
        {{if .SexoTexto}}<div class="field"><span class="field-label">Sexo:</span><span class="field-value">{{.SexoTexto}}</span></div>{{end}}
        {{if .Cert.Datos.Nacionalidad}}<div class="field"><span class="field-label">Nacionalidad:</span><span class="field-value">{{.Cert.Datos.Nacionalidad}}</span></div>{{end}}
    </div>

    <div class="section">
        <div class="section-title">LUGAR DE NACIMIENTO</div>
        {{if .Cert.Datos.LugarNacimiento}}<div class="field"><span class="field-label">Hospital/Institución:</span><span class="field-value">{{.Cert.Datos.LugarNacimiento}}</span></div>{{end}}
        {{if .Ubicacion}}<div class="field"><span class="field-label">Ubicación:</span><span class="field-value">{{.Ubicacion}}</span></div>{{end}}
    </div>

    <div class="section">
        <div class="section-title">DATOS DE LOS PADRES</div>
        {{if .NombrePadre}}
        <div class="field"><span class="field-label">Padre:</span><span class="field-value">{{.NombrePadre}}</span></div>
        <div class="parent-info">
            {{if .Cert.Datos.CedulaPadre}}<div class="field"><span class="field-label">Cédula:</span><span class="field-value">{{.Cert.Datos.CedulaPadre}}</span></div>{{end}}
            {{if .Cert.Datos.NacionalidadPadre}}<div class="field"><span class="field-label">Nacionalidad:</span><span class="field-value">{{.Cert.Datos.NacionalidadPadre}}</span></div>{{end}}
        </div>
        {{end}}
        {{if .NombreMadre}}
        <div class="field"><span class="field-label">Madre:</span><span class="field-value">{{.NombreMadre}}</span></div>
        <div class="parent-info">
            {{if .Cert.Datos.CedulaMadre}}<div class="field"><span class="field-label">Cédula:</span><span class="field-value">{{.Cert.Datos.CedulaMadre}}</span></div>{{end}}
            {{if .Cert.Datos.NacionalidadMadre}}<div class="field"><span class="field-label">Nacionalidad:</span><span class="field-value">{{.Cert.Datos.NacionalidadMadre}}</span></div>{{end}}
        </div>
        {{end}}
    </div>

    <div class="footer">
        <p><strong>Este certificado es válido para todos los efectos legales.</strong></p>
        <div class="generated-date">Documento generado el {{.Generado}}</div>
    </div>
</body>
</html>
`))
