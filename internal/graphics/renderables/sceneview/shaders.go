package sceneview

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 normal;
out vec2 uv;

void main() {
    normal = mat3(model) * inNormal;
    uv = inUV;
    gl_Position = projection * view * model * vec4(inPosition, 1.0);
}
`

const fragSrc = `
#version 410 core
in vec3 normal;
in vec2 uv;

uniform sampler2D baseTexture;
uniform vec4 baseColor;
uniform bool lightOff;
uniform vec3 ambient;
uniform bool hasDirectional;
uniform vec3 lightDir;
uniform vec3 lightColor;

out vec4 fragColor;

void main() {
    vec4 color = texture(baseTexture, uv) * baseColor;
    if (color.a < 0.01) {
        discard;
    }
    if (lightOff) {
        fragColor = color;
        return;
    }
    vec3 lit = ambient;
    if (hasDirectional) {
        lit += lightColor * max(dot(normalize(normal), -lightDir), 0.0);
    }
    fragColor = vec4(color.rgb * min(lit, vec3(1.0)), color.a);
}
`
