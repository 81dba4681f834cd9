package render

// O terreno é todo cor-de-vértice (a sombra por orientação de face já vem
// multiplicada na cor pelo mesher), então o shader só acrescenta o que o
// vértice não sabe: neblina por distância e um leve realce direcional.
const terrainVertexShader = `
#version 330

in vec3 vertexPosition;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;

out vec4 fragColor;
out vec3 fragNormal;
out vec3 fragWorldPos;

void main()
{
    fragColor = vertexColor;
    fragNormal = vertexNormal;
    fragWorldPos = vertexPosition;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const terrainFragmentShader = `
#version 330

in vec4 fragColor;
in vec3 fragNormal;
in vec3 fragWorldPos;

uniform vec4 colDiffuse;
uniform vec3 camPos;

out vec4 finalColor;

void main()
{
    vec4 color = fragColor * colDiffuse;

    // Realce direcional sutil por cima da sombra de face pré-calculada
    vec3 lightDir = normalize(vec3(0.4, 0.8, 0.3));
    float diff = max(dot(normalize(fragNormal), lightDir), 0.0);
    color.rgb *= 0.88 + 0.12 * diff;

    // Neblina exponencial casando com a cor do céu
    float dist = length(camPos - fragWorldPos);
    vec3 fogColor = vec3(0.53, 0.71, 0.92);
    float fogFactor = clamp(exp(-pow(dist * 0.007, 2.0)), 0.0, 1.0);

    finalColor = vec4(mix(fogColor, color.rgb, fogFactor), color.a);
}
`

// A água ondula no vertex shader e herda o alpha parcial da paleta; o passe
// dela roda com BlendAlpha depois de todo o terreno opaco.
const waterVertexShader = `
#version 330

in vec3 vertexPosition;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;
uniform float time;

out vec4 fragColor;
out vec3 fragWorldPos;

void main()
{
    fragColor = vertexColor;

    vec3 pos = vertexPosition;
    // Só a superfície ondula; paredes laterais de água ficam paradas
    if (vertexNormal.y > 0.5) {
        pos.y += sin(time * 1.6 + pos.x * 0.9 + pos.z * 1.3) * 0.05 - 0.08;
    }

    fragWorldPos = pos;
    gl_Position = mvp * vec4(pos, 1.0);
}
`

const waterFragmentShader = `
#version 330

in vec4 fragColor;
in vec3 fragWorldPos;

uniform vec4 colDiffuse;
uniform float time;
uniform vec3 camPos;

out vec4 finalColor;

void main()
{
    vec4 color = fragColor * colDiffuse;

    // Faixas de brilho deslizando na superfície
    float shimmer = sin(fragWorldPos.x * 2.3 + time * 1.1) *
                    sin(fragWorldPos.z * 1.9 - time * 0.7);
    color.rgb += shimmer * 0.04;

    float dist = length(camPos - fragWorldPos);
    vec3 fogColor = vec3(0.53, 0.71, 0.92);
    float fogFactor = clamp(exp(-pow(dist * 0.007, 2.0)), 0.0, 1.0);

    finalColor = vec4(mix(fogColor, color.rgb, fogFactor), color.a * fogFactor);
}
`
