package core

// SampleEmail is a Portuguese-language phishing message used by SampleAnalysis
const SampleEmail = `
Assunto: 🚨 Alerta de Segurança: Acesso suspeito à sua conta bancária

De: suporte@itauseguro-online.com.br
Para: cliente@exemplo.com

Prezado(a) cliente,

Detectamos uma atividade suspeita em sua conta na madrugada de hoje (11/06/2025), às 03:14 AM, a partir de um dispositivo desconhecido localizado em Fortaleza/CE.

Por motivos de segurança, sua conta foi temporariamente bloqueada até que possamos verificar sua identidade.

Para desbloquear sua conta e evitar a suspensão permanente, pedimos que acesse o link abaixo e confirme suas informações:

🔒 Acesse sua conta com segurança

Caso o procedimento não seja realizado nas próximas 12 horas, sua conta será suspensa automaticamente como medida preventiva.

Agradecemos sua compreensão.
Atenciosamente,
Equipe de Segurança Itaú Unibanco
suporte@itauseguro-online.com.br

Este é um e-mail automático. Não responda a esta mensagem.
`
