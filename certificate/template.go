package certificate

import (
	"bytes"
	"html/template"
)

// documentData is everything the certificate document displays. All four
// fields come from stored records, never from the request.
type documentData struct {
	StudentName       string
	CourseTitle       string
	CompletionDate    string
	CertificateNumber string
}

// renderDocument fills the fixed certificate template. It does no I/O; the
// output is a self-contained HTML page sized for A4 landscape print.
func renderDocument(data documentData) ([]byte, error) {
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var documentTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Certificado - {{.CertificateNumber}}</title>
  <style>
    @page {
      size: A4 landscape;
      margin: 0;
    }
    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }
    body {
      font-family: 'Georgia', serif;
      width: 297mm;
      height: 210mm;
      display: flex;
      justify-content: center;
      align-items: center;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    }
    .certificate {
      width: 270mm;
      height: 185mm;
      background: white;
      border: 10px solid #2196F3;
      border-radius: 20px;
      position: relative;
      padding: 40px;
      box-shadow: 0 20px 60px rgba(0,0,0,0.3);
    }
    .certificate::before {
      content: '';
      position: absolute;
      top: 20px;
      left: 20px;
      right: 20px;
      bottom: 20px;
      border: 2px solid #64B5F6;
      border-radius: 10px;
      pointer-events: none;
    }
    .header {
      text-align: center;
      margin-bottom: 30px;
    }
    .title {
      font-size: 56px;
      font-weight: bold;
      color: #2196F3;
      letter-spacing: 8px;
      margin-bottom: 10px;
      text-transform: uppercase;
    }
    .subtitle {
      font-size: 20px;
      color: #666;
      letter-spacing: 4px;
    }
    .content {
      text-align: center;
      margin: 40px 0;
    }
    .text {
      font-size: 18px;
      color: #555;
      margin-bottom: 20px;
    }
    .student-name {
      font-size: 42px;
      font-weight: bold;
      color: #1a237e;
      margin: 25px 0;
      border-bottom: 2px solid #2196F3;
      display: inline-block;
      padding-bottom: 10px;
    }
    .course-title {
      font-size: 28px;
      font-weight: bold;
      color: #2196F3;
      margin: 25px 0;
    }
    .footer {
      display: flex;
      justify-content: space-between;
      align-items: flex-end;
      margin-top: 50px;
      padding: 0 60px;
    }
    .signature {
      text-align: center;
      flex: 1;
    }
    .signature-line {
      width: 200px;
      height: 2px;
      background: #999;
      margin: 0 auto 10px;
    }
    .signature-title {
      font-size: 14px;
      color: #555;
      font-weight: bold;
    }
    .signature-subtitle {
      font-size: 12px;
      color: #888;
    }
    .info {
      text-align: center;
      margin-top: 30px;
    }
    .cert-number {
      font-size: 12px;
      color: #999;
    }
    .date {
      font-size: 14px;
      color: #666;
      margin-top: 5px;
    }
    @media print {
      body {
        background: white;
      }
    }
  </style>
</head>
<body>
  <div class="certificate">
    <div class="header">
      <div class="title">CERTIFICADO</div>
      <div class="subtitle">DE COMPLETITUD</div>
    </div>

    <div class="content">
      <p class="text">Este certificado se otorga a:</p>
      <div class="student-name">{{.StudentName}}</div>
      <p class="text">por completar exitosamente el curso:</p>
      <div class="course-title">{{.CourseTitle}}</div>
    </div>

    <div class="footer">
      <div class="signature">
        <div class="signature-line"></div>
        <div class="signature-title">Director Académico</div>
        <div class="signature-subtitle">Serene - Plataforma Educativa</div>
      </div>
    </div>

    <div class="info">
      <div class="cert-number">Certificado N°: {{.CertificateNumber}}</div>
      <div class="date">Fecha de completitud: {{.CompletionDate}}</div>
    </div>
  </div>
</body>
</html>
`))
